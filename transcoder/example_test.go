package transcoder_test

import (
	"fmt"

	"hal-navigator/document"
	"hal-navigator/transcoder"
)

func ExampleTranscoder() {
	doc, _ := document.Parse([]byte(`{
		"_links": {"self": {"href": "http://example.com/orders/1"}},
		"status": "open"
	}`))

	tr, _ := transcoder.New(
		transcoder.Property("status"),
		transcoder.Link("self", transcoder.Param("url")),
	)

	params, _ := tr.Decode(doc)
	fmt.Println(params["status"], params["url"])

	back, _ := tr.Encode(params)
	target, _ := back.LinkTarget("self")
	fmt.Println(target)

	// Output:
	// open http://example.com/orders/1
	// http://example.com/orders/1
}
