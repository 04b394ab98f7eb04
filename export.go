package htmldoc

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"os"
)

// Export renders the document and writes it to the file named by opts.Path
// (default "index.html"). The file is never overwritten: a pre-existing
// file, like a permission denial, is an environmental condition. It is
// reported as a user-facing message through the tracer and not propagated
// as an error. The file handle is closed on every exit path; on a write
// fault the rendered text up to the fault may remain on disk.
func (doc *Document) Export(opts ExportOptions) error {
	opts = opts.withDefaults()
	f, err := os.OpenFile(opts.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) || os.IsPermission(err) {
			tracer().Errorf("cannot export document to %q: %v", opts.Path, err)
			return nil
		}
		return err
	}
	defer f.Close()
	tracer().Debugf("exporting document %q to %q", doc.title, opts.Path)
	return doc.Write(f, opts)
}
