package api

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"mime"
	"net/http"
)

// pageNavigator remembers the navigation target so the rendered page can send
// the browser there.
type pageNavigator struct {
	href string
}

func (n *pageNavigator) Navigate(href string) error {
	n.href = href
	return nil
}

// pageDownloader embeds the offered file in the rendered page as a data: link.
type pageDownloader struct {
	link *HoldLink
}

func (d *pageDownloader) Offer(filename, mediaType string, content []byte) error {
	d.link = &HoldLink{
		Filename: filename,
		Href:     template.URL("data:" + mediaType + ";charset=utf-8;base64," + base64.StdEncoding.EncodeToString(content)),
	}
	return nil
}

// attachmentDownloader writes the offered file as the HTTP response.
type attachmentDownloader struct {
	w http.ResponseWriter
}

func (d attachmentDownloader) Offer(filename, mediaType string, content []byte) error {
	h := d.w.Header()
	h.Set("Content-Type", mediaType+"; charset=utf-8")
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	d.w.WriteHeader(http.StatusOK)
	if _, err := d.w.Write(content); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
