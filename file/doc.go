// Package file reads and appends to local files addressed by path.Path.
//
// Binary works in bytes and Text in UTF-8 characters. Both open the file
// for every call, so values are cheap and hold no handle:
//
//	log := file.NewText(sys, path.New("/var/log/app.log"))
//	if err := log.Append("started\n"); err != nil {
//	    return err
//	}
//	head, err := log.Read(80, 0)
//
// Writes always append, creating the file when it is missing.
package file
