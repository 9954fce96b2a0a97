package image

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
)

// DownloadPrefix is the data URL prefix used for the download link.
const DownloadPrefix = "data:file/png;base64,"

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DataURL(data []byte) string {
	return DownloadPrefix + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL reverses DataURL.
func DecodeDataURL(url string) (image.Image, error) {
	payload, ok := strings.CutPrefix(url, DownloadPrefix)
	if !ok {
		return nil, errors.New("not a png data url")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(data))
}
