package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachmentURL(t *testing.T) {
	assert.Equal(t, "/img/simulated/123-cat.png", AttachmentURL("cat.png", "image/png", 123))
	assert.Equal(t, "/docs/simulated/456-cv.pdf", AttachmentURL("cv.pdf", "application/pdf", 456))
	// Routing follows the MIME type, not the extension.
	assert.Equal(t, "/docs/simulated/789-weird.png", AttachmentURL("weird.png", "application/octet-stream", 789))
}

func TestAppendAttachment(t *testing.T) {
	assert.Equal(t, "hi\n\n[attachment]/docs/simulated/1-a.pdf[/attachment]",
		AppendAttachment("hi", "/docs/simulated/1-a.pdf"))
	assert.Equal(t, "[attachment]/docs/simulated/1-a.pdf[/attachment]",
		AppendAttachment("", "/docs/simulated/1-a.pdf"))
}

func TestParseBody_TextAndImage(t *testing.T) {
	segments := ParseBody("hi[attachment]/img/simulated/123-cat.png[/attachment]")
	require.Len(t, segments, 2)
	assert.Equal(t, Segment{Kind: SegmentText, Text: "hi"}, segments[0])
	assert.Equal(t, Segment{Kind: SegmentAttachment, URL: "/img/simulated/123-cat.png", Image: true}, segments[1])
}

func TestParseBody_PlainText(t *testing.T) {
	segments := ParseBody("just words")
	require.Len(t, segments, 1)
	assert.Equal(t, SegmentText, segments[0].Kind)
	assert.Equal(t, "just words", segments[0].Text)
}

func TestParseBody_MultipleAttachmentsPreserveOrder(t *testing.T) {
	body := "before[attachment]/docs/simulated/1-a.pdf[/attachment]middle" +
		"[attachment]/img/simulated/2-b.jpg[/attachment]  after  "
	segments := ParseBody(body)
	require.Len(t, segments, 5)
	assert.Equal(t, "before", segments[0].Text)
	assert.Equal(t, "/docs/simulated/1-a.pdf", segments[1].URL)
	assert.False(t, segments[1].Image)
	assert.Equal(t, "middle", segments[2].Text)
	assert.True(t, segments[3].Image)
	assert.Equal(t, "after", segments[4].Text)
}

func TestParseBody_DropsWhitespaceOnlySegments(t *testing.T) {
	body := "  \n\n[attachment]/docs/simulated/1-a.pdf[/attachment]\n  "
	segments := ParseBody(body)
	require.Len(t, segments, 1)
	assert.Equal(t, SegmentAttachment, segments[0].Kind)
}

func TestParseBody_ImageByExtension(t *testing.T) {
	segments := ParseBody("[attachment]https://example.com/photo.JPG[/attachment]")
	require.Len(t, segments, 1)
	assert.True(t, segments[0].Image)
}

func TestParseBody_NonGreedy(t *testing.T) {
	body := "[attachment]/docs/simulated/1-a.pdf[/attachment] and [attachment]/docs/simulated/2-b.txt[/attachment]"
	segments := ParseBody(body)
	require.Len(t, segments, 3)
	assert.Equal(t, "/docs/simulated/1-a.pdf", segments[0].URL)
	assert.Equal(t, "and", segments[1].Text)
	assert.Equal(t, "/docs/simulated/2-b.txt", segments[2].URL)
}

func TestDepartmentChannelID(t *testing.T) {
	assert.Equal(t, "engineering", DeptEngineering.ChannelID())
	assert.Equal(t, "human-resources", DeptHR.ChannelID())
	assert.Equal(t, "water-research", DeptWaterResearch.ChannelID())
}
