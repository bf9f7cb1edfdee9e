package playlist

import (
	"encoding/xml"
	"io"
	"strconv"
)

// WPL structure based on Windows Media Player playlist format
type WPL struct {
	XMLName xml.Name `xml:"smil"`
	Head    WPLHead  `xml:"head"`
	Body    WPLBody  `xml:"body"`
}

type WPLHead struct {
	Title string    `xml:"title"`
	Meta  []WPLMeta `xml:"meta"`
}

type WPLMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type WPLBody struct {
	Seq WPLSeq `xml:"seq"`
}

type WPLSeq struct {
	Media []WPLMedia `xml:"media"`
}

// WPLMedia is a single entry. Src carries the video id since the player has
// no file paths.
type WPLMedia struct {
	Src   string `xml:"src,attr"`
	Title string `xml:"title,attr,omitempty"`
}

// Entry is a resolved playlist item to export.
type Entry struct {
	ID    string
	Title string
}

// WriteWPL encodes a playlist as an indented WPL document.
func WriteWPL(w io.Writer, name string, entries []Entry) error {
	doc := WPL{
		Head: WPLHead{
			Title: name,
			Meta: []WPLMeta{
				{Name: "Generator", Content: "video-player"},
				{Name: "ItemCount", Content: strconv.Itoa(len(entries))},
			},
		},
	}
	for _, e := range entries {
		doc.Body.Seq.Media = append(doc.Body.Seq.Media, WPLMedia{Src: e.ID, Title: e.Title})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
