package ubl

import (
	"archive/zip"
	"bytes"
	"crypto/md5" //nolint:gosec // the provider requires an MD5 digest of the payload
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var ErrNoXML = errors.New("no xml document in payload")

const maxXMLSize = 20 << 20

// ExtractXML decodes a base64 payload that is either a zip archive holding an XML document
// or the XML document itself.
func ExtractXML(payload string) ([]byte, error) {
	clean := strings.Join(strings.Fields(payload), "")
	if clean == "" {
		return nil, ErrNoXML
	}

	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		if looksLikeXML(raw) {
			return raw, nil
		}

		return nil, ErrNoXML
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() || !strings.EqualFold(path.Ext(f.Name), ".xml") {
			continue
		}

		return readZipFile(f)
	}

	return nil, ErrNoXML
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(io.LimitReader(rc, maxXMLSize))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}

	return b, nil
}

func looksLikeXML(b []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(bytes.TrimPrefix(b, []byte("\xef\xbb\xbf"))), []byte("<"))
}

// PackXML zips a single XML document and returns the archive with its upper-case MD5 hex digest.
func PackXML(name string, xmlDoc []byte) ([]byte, string, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	w, err := zw.Create(name)
	if err != nil {
		return nil, "", fmt.Errorf("create zip entry: %w", err)
	}

	_, err = w.Write(xmlDoc)
	if err != nil {
		return nil, "", fmt.Errorf("write zip entry: %w", err)
	}

	err = zw.Close()
	if err != nil {
		return nil, "", fmt.Errorf("close zip: %w", err)
	}

	sum := md5.Sum(buf.Bytes()) //nolint:gosec

	return buf.Bytes(), strings.ToUpper(hex.EncodeToString(sum[:])), nil
}
