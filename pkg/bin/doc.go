// Package bin is the public entry point for decoding property-bag ("PROP")
// documents.
//
// A document is decoded in one synchronous pass into a types.Document. Names
// are hashes on the wire; pass a *hashes.Resolver to recover labels, or nil to
// keep everything numeric:
//
//	res, err := hashes.LoadDir("hashes")
//	if err != nil { ... }
//	doc, err := bin.DecodeFile("data/shaco.bin", res, types.DefaultDecodeOptions())
//	if err != nil {
//		var be *types.Error
//		if errors.As(err, &be) { fmt.Println(be.Kind, be.Offset, be.Stage) }
//	}
//
// DecodeFile memory-maps the file where possible and inflates zstd-framed
// input. DecodeAll decodes many files concurrently with a shared resolver.
package bin
