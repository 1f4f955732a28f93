package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hal-navigator/document"
)

func TestForRel(t *testing.T) {
	t.Parallel()

	doc := document.New()
	doc.PutLink("item", document.LinkFragment{Href: "/items/7"})
	doc.PutLink("item", document.LinkFragment{Href: "/items/9"})

	sub := document.New()
	sub.PutLink("self", document.LinkFragment{Href: "/items/11"})
	doc.PutEmbedded("item", sub)

	links, err := ForRel(doc, "item")
	require.NoError(t, err)
	require.Len(t, links, 3)

	assert.Equal(t, "/items/7", links[0].TargetURL)
	assert.Equal(t, "/items/9", links[1].TargetURL)
	assert.Equal(t, "/items/11", links[2].TargetURL)
	assert.Same(t, sub, links[2].Target)
}

func TestForRel_MalformedFragment(t *testing.T) {
	t.Parallel()

	doc := document.New()
	doc.PutLink("item", document.LinkFragment{Name: "no-href"})

	_, err := ForRel(doc, "item")
	require.ErrorIs(t, err, ErrMissingHref)
}

func TestFromDocument(t *testing.T) {
	t.Parallel()

	doc := document.New()
	doc.PutLink("self", document.LinkFragment{Href: "/orders/1"})
	doc.PutLink("item", document.LinkFragment{Href: "/items/7"})
	doc.PutEmbedded("customer", document.New())

	links, err := FromDocument(doc)
	require.NoError(t, err)
	require.Len(t, links, 3)

	rels := []string{links[0].Rel, links[1].Rel, links[2].Rel}
	assert.Equal(t, []string{"customer", "item", "self"}, rels)
}
