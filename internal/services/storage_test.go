package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestSaveUploadStoresPDF(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	content := []byte("%PDF-1.4\nbody")

	filename, filePath, err := storage.SaveUpload(uploadHeader(t, "Posting.PDF", content))
	require.NoError(t, err)

	assert.Regexp(t, `^job_[0-9a-f-]{36}\.pdf$`, filename)
	assert.Equal(t, filepath.Join(dir, filename), filePath)
	stored, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, content, stored)

	require.NoError(t, storage.DeleteFile(filename))
	assert.NoFileExists(t, filePath)
}

func TestSaveUploadRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	_, _, err := storage.SaveUpload(uploadHeader(t, "posting.docx", []byte("%PDF-1.4")))
	assert.ErrorContains(t, err, "invalid file extension")

	_, _, err = storage.SaveUpload(uploadHeader(t, "posting.pdf", []byte("PK\x03\x04 zip archive")))
	assert.ErrorIs(t, err, ErrNotPDF)

	_, _, err = storage.SaveUpload(uploadHeader(t, "tiny.pdf", []byte("%P")))
	assert.ErrorIs(t, err, ErrNotPDF)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEnsureUploadDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	require.NoError(t, NewStorageService(dir).EnsureUploadDir())
	assert.DirExists(t, dir)
}
