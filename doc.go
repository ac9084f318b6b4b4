// Package mdpaper converts Markdown documents to paginated PDF using
// headless Chrome.
//
// # Quick Start
//
// Create a service, convert a document, and close when done:
//
//	svc := mdpaper.New()
//	defer svc.Close()
//
//	format, err := mdpaper.ParseFormat("A4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pdf, err := svc.Convert(ctx, mdpaper.Input{
//	    Markdown: "# Hello\n\nWorld",
//	    BaseDir:  "/path/to/markdown", // for resolving ./image.png references
//	    Format:   format,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.a4.pdf", pdf, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Image inlining (local ./path references become base64 data URIs)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. HTML composition (print stylesheet parameterized by paper format)
//  4. PDF rendering via headless Chrome (go-rod)
//
// Four paper formats are supported (A2, A3, A4, A5); each carries its own
// margin and typography scale. Documents are independent: the service
// holds no per-document state and a browser page is created and closed per
// conversion.
package mdpaper
