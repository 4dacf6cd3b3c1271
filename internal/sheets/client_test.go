package sheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"website_updater/internal/sheets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	csv := "field,value\nsite_title,Acme\ncompany_name,ACME Industrial\n"

	rows, err := sheets.DecodeRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "site_title", rows[0]["field"])
	assert.Equal(t, "ACME Industrial", rows[1]["value"])
}

func TestDecodeRowsQuotedFields(t *testing.T) {
	csv := "field,value\nfooter_text,\"Steel, concrete\nand glass\"\n"

	rows, err := sheets.DecodeRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Steel, concrete\nand glass", rows[0]["value"])
}

func TestDecodeRowsRaggedRecords(t *testing.T) {
	csv := "name,link_id,gradient\nFabrication\nInstallation,installation,extra-token,spill\n"

	rows, err := sheets.DecodeRows(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// A short record leaves its trailing fields empty.
	assert.Equal(t, "Fabrication", rows[0]["name"])
	assert.Equal(t, "", rows[0]["link_id"])

	// Cells beyond the header are dropped.
	assert.Equal(t, "extra-token", rows[1]["gradient"])
	assert.Len(t, rows[1], 3)
}

func TestDecodeRowsHeaderOnly(t *testing.T) {
	rows, err := sheets.DecodeRows(strings.NewReader("field,value\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeRowsEmptyInput(t *testing.T) {
	rows, err := sheets.DecodeRows(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFetchRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("field,value\ntitle,Welcome\n"))
	}))
	defer srv.Close()

	client := sheets.NewClient()
	rows, err := client.FetchRows(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Welcome", rows[0]["value"])
}

func TestFetchRowsEmptyURL(t *testing.T) {
	client := sheets.NewClient()
	rows, err := client.FetchRows(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFetchRowsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not published", http.StatusForbidden)
	}))
	defer srv.Close()

	client := sheets.NewClient()
	rows, err := client.FetchRows(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Empty(t, rows)
}

func TestFetchRowsUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := sheets.NewClient()
	_, err := client.FetchRows(context.Background(), url)
	assert.Error(t, err)
}
