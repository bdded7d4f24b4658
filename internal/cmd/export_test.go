package cmd

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportQuery(t *testing.T) {
	exportFlags.search = "summer"
	exportFlags.status = "active"
	exportFlags.filters = map[string]string{"position": "hero", "status": "draft"}
	t.Cleanup(func() {
		exportFlags.search, exportFlags.status, exportFlags.filters = "", "", nil
	})

	q := exportQuery()

	assert.Equal(t, url.Values{
		"search":   {"summer"},
		"status":   {"active"},
		"position": {"hero"},
	}, q)
}
