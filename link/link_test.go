package link

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hal-navigator/document"
)

func TestFromLinksEntry(t *testing.T) {
	t.Parallel()

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		l, err := FromLinksEntry("self", document.LinkFragment{Href: "http://x"})
		require.NoError(t, err)

		assert.Equal(t, Link{Rel: "self", TargetURL: "http://x"}, l)
	})

	t.Run("templated with name", func(t *testing.T) {
		t.Parallel()

		l, err := FromLinksEntry("search", document.LinkFragment{
			Href:      "/orders{?id}",
			Templated: true,
			Name:      "by-id",
		})
		require.NoError(t, err)

		assert.True(t, l.Templated)
		assert.Equal(t, "by-id", l.Name)
	})

	t.Run("missing href", func(t *testing.T) {
		t.Parallel()

		_, err := FromLinksEntry("self", document.LinkFragment{Name: "nameless"})
		require.ErrorIs(t, err, ErrMissingHref)
	})
}

func TestFromEmbedded(t *testing.T) {
	t.Parallel()

	t.Run("with self link", func(t *testing.T) {
		t.Parallel()

		sub := document.New()
		sub.PutLink("self", document.LinkFragment{Href: "http://example.com/customers/3"})

		l := FromEmbedded("customer", sub)

		assert.Equal(t, "customer", l.Rel)
		assert.Equal(t, "http://example.com/customers/3", l.TargetURL)
		assert.False(t, l.Templated)
		assert.Same(t, sub, l.Target)
	})

	t.Run("without self link", func(t *testing.T) {
		t.Parallel()

		l := FromEmbedded("customer", document.New())

		assert.Empty(t, l.TargetURL)

		_, err := l.ResolveTarget(nil)
		require.ErrorIs(t, err, ErrAnonymousLink)
	})
}

func TestResolveTarget(t *testing.T) {
	t.Parallel()

	t.Run("verbatim", func(t *testing.T) {
		t.Parallel()

		url, err := Link{Rel: "self", TargetURL: "http://x"}.ResolveTarget(Vars{"unused": "v"})
		require.NoError(t, err)
		assert.Equal(t, "http://x", url)
	})

	t.Run("templated", func(t *testing.T) {
		t.Parallel()

		l := Link{Rel: "search", TargetURL: "/orders{?id}", Templated: true}

		url, err := l.ResolveTarget(Vars{"id": "5"})
		require.NoError(t, err)
		assert.Equal(t, "/orders?id=5", url)
	})

	t.Run("templated with missing vars", func(t *testing.T) {
		t.Parallel()

		l := Link{Rel: "search", TargetURL: "/orders{?id}", Templated: true}

		url, err := l.ResolveTarget(nil)
		require.NoError(t, err)
		assert.Equal(t, "/orders", url)
	})

	t.Run("templated path segment is encoded", func(t *testing.T) {
		t.Parallel()

		l := Link{Rel: "find", TargetURL: "/orders/{id}", Templated: true}

		url, err := l.ResolveTarget(Vars{"id": "a b"})
		require.NoError(t, err)
		assert.Equal(t, "/orders/a%20b", url)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		_, err := Link{Rel: "self"}.ResolveTarget(nil)
		require.ErrorIs(t, err, ErrAnonymousLink)
	})
}

func TestExpandCurie(t *testing.T) {
	t.Parallel()

	namespaces := Namespaces{"app": "http://ex.com/rels/{rel}"}

	t.Run("hit", func(t *testing.T) {
		t.Parallel()

		got := Link{Rel: "app:manager", TargetURL: "/m"}.ExpandCurie(namespaces)
		require.Len(t, got, 2)

		assert.Equal(t, "app:manager", got[0].Rel)
		assert.Equal(t, "http://ex.com/rels/manager", got[1].Rel)
		assert.Equal(t, "/m", got[1].TargetURL, "expansion keeps the rest of the link")
	})

	t.Run("no colon", func(t *testing.T) {
		t.Parallel()

		got := Link{Rel: "self"}.ExpandCurie(namespaces)
		require.Len(t, got, 1)
		assert.Equal(t, "self", got[0].Rel)
	})

	t.Run("no colon against empty table", func(t *testing.T) {
		t.Parallel()

		got := Link{Rel: "self"}.ExpandCurie(Namespaces{})
		require.Len(t, got, 1)
		assert.Equal(t, "self", got[0].Rel)
	})

	t.Run("unknown prefix falls back silently", func(t *testing.T) {
		t.Parallel()

		got := Link{Rel: "app:manager"}.ExpandCurie(Namespaces{})
		require.Len(t, got, 1)
		assert.Equal(t, "app:manager", got[0].Rel)
	})

	t.Run("local part is substituted once", func(t *testing.T) {
		t.Parallel()

		got := Link{Rel: "app:a:b"}.ExpandCurie(namespaces)
		require.Len(t, got, 2)
		assert.Equal(t, "http://ex.com/rels/a%3Ab", got[1].Rel,
			"split happens on the first colon only")
	})
}
