// Package config loads the YAML configuration of syskit front-ends and
// turns it into a ready System and logger.
//
// # File Format
//
//	provider: os            # os, billy or memory
//	root: /                 # billy only: directory the provider is rooted at
//	log_level: warn         # debug, info, warn or error
//	log_format: text        # text or json
//	directory_permission: "755"
//	temp_dir: /var/tmp      # fallback when $TMPDIR, /tmp and cwd are unusable
//
// Omitted keys keep their Default values; unknown keys are rejected.
//
// # Usage
//
//	cfg, err := config.LoadFile("syskit.yaml")
//	if err != nil {
//	    return err
//	}
//	sys, err := cfg.System(cfg.Logger(os.Stderr))
package config
