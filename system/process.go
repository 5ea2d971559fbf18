package system

import "github.com/jmgilman/syskit/path"

// tmpDir is consulted when $TMPDIR is unset.
var tmpDir = path.New("/tmp")

// WorkingDirectory returns the current working directory.
func (s *System) WorkingDirectory() (path.Path, error) {
	wd, err := s.process.Getwd()
	if err != nil {
		return path.Path{}, err
	}
	return path.New(wd), nil
}

// SetWorkingDirectory changes the current working directory.
func (s *System) SetWorkingDirectory(p path.Path) error {
	if err := s.process.Chdir(p.String()); err != nil {
		return err
	}
	s.logger.Debug("working directory changed", "path", p.String())
	return nil
}

// TemporaryDirectory returns a directory for temporary files: $TMPDIR when
// set, otherwise /tmp when it is a directory, otherwise the working
// directory, otherwise the fallback set by WithTempFallback.
func (s *System) TemporaryDirectory() path.Path {
	if dir, ok := s.process.LookupEnv("TMPDIR"); ok && dir != "" {
		return path.New(dir)
	}
	if s.IsDirectory(tmpDir) {
		return tmpDir
	}
	if wd, err := s.WorkingDirectory(); err == nil {
		return wd
	}
	return s.fallback
}
