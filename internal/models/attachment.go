package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Attachments are carried inline in the message body as
// [attachment]<url>[/attachment]. There is no real upload pipeline; the
// url is synthesized from the upload timestamp and the original
// filename, which is enough for clients to render a link or an image.

const (
	imagePathPrefix    = "/img/simulated/"
	documentPathPrefix = "/docs/simulated/"
)

var attachmentPattern = regexp.MustCompile(`\[attachment\](.+?)\[/attachment\]`)

var imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif)$`)

// AttachmentURL builds the synthetic url for an uploaded file. Images
// (by MIME type) go under the image path prefix, everything else under
// the document prefix.
func AttachmentURL(filename, mimeType string, unixMilli int64) string {
	prefix := documentPathPrefix
	if strings.HasPrefix(mimeType, "image/") {
		prefix = imagePathPrefix
	}
	return fmt.Sprintf("%s%d-%s", prefix, unixMilli, filename)
}

// AppendAttachment appends the attachment marker to body, separated by a
// blank line when body is non-empty.
func AppendAttachment(body, url string) string {
	sep := ""
	if body != "" {
		sep = "\n\n"
	}
	return body + sep + "[attachment]" + url + "[/attachment]"
}

// SegmentKind tags a parsed body segment.
type SegmentKind string

const (
	SegmentText       SegmentKind = "text"
	SegmentAttachment SegmentKind = "attachment"
)

// Segment is one piece of a parsed message body, in original order.
type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Text  string      `json:"text,omitempty"`
	URL   string      `json:"url,omitempty"`
	Image bool        `json:"image,omitempty"`
}

// ParseBody splits body into an ordered sequence of text and attachment
// segments. Text segments are trimmed of surrounding whitespace and
// empty segments are dropped. An attachment is treated as an image when
// its url carries a known image extension or the image path prefix.
func ParseBody(body string) []Segment {
	var segments []Segment
	last := 0
	for _, m := range attachmentPattern.FindAllStringSubmatchIndex(body, -1) {
		if m[0] > last {
			appendText(&segments, body[last:m[0]])
		}
		url := body[m[2]:m[3]]
		segments = append(segments, Segment{
			Kind:  SegmentAttachment,
			URL:   url,
			Image: isImageURL(url),
		})
		last = m[1]
	}
	if last < len(body) {
		appendText(&segments, body[last:])
	}
	return segments
}

func appendText(segments *[]Segment, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	*segments = append(*segments, Segment{Kind: SegmentText, Text: text})
}

func isImageURL(url string) bool {
	return imageExtPattern.MatchString(url) || strings.HasPrefix(url, imagePathPrefix)
}
