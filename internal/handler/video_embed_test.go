package handler

import (
	"strings"
	"testing"
)

func TestRenderMarkdown_VideoEmbeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		markdown   string
		wantSrc    string
		wantVendor string
	}{
		{
			name:       "youtube",
			markdown:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantSrc:    "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
			wantVendor: "youtube",
		},
		{
			name:       "youtu.be",
			markdown:   "https://youtu.be/dQw4w9WgXcQ",
			wantSrc:    "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ",
			wantVendor: "youtube",
		},
		{
			name:       "youtube-shorts",
			markdown:   "youtube.com/shorts/abc123XYZ",
			wantSrc:    "https://www.youtube-nocookie.com/embed/abc123XYZ",
			wantVendor: "youtube",
		},
		{
			name:       "vimeo",
			markdown:   "https://vimeo.com/76979871",
			wantSrc:    "https://player.vimeo.com/video/76979871",
			wantVendor: "vimeo",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html, err := renderMarkdown(tt.markdown)
			if err != nil {
				t.Fatalf("render markdown: %v", err)
			}
			if !strings.Contains(html, "<iframe") {
				t.Fatalf("expected iframe in output, got: %s", html)
			}
			if !strings.Contains(html, tt.wantSrc) {
				t.Fatalf("expected iframe src to include %q, got: %s", tt.wantSrc, html)
			}
			if !strings.Contains(html, "data-video-platform=\""+tt.wantVendor+"\"") {
				t.Fatalf("expected platform %q marker, got: %s", tt.wantVendor, html)
			}
		})
	}
}

func TestRenderMarkdown_SkipsVideoEmbedInsideCodeFence(t *testing.T) {
	t.Parallel()

	html, err := renderMarkdown("```\nhttps://www.youtube.com/watch?v=dQw4w9WgXcQ\n```")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if strings.Contains(html, "<iframe") {
		t.Fatalf("expected no iframe inside code fence, got: %s", html)
	}
}

func TestRenderMarkdown_YouTubeEmbedHasDisplayParams(t *testing.T) {
	t.Parallel()

	html, err := renderMarkdown("<https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=1m2s>")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	for _, want := range []string{"modestbranding=1", "rel=0", "start=62"} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output, got: %s", want, html)
		}
	}
}

func TestRenderMarkdown_SkipsInlineVideoURL(t *testing.T) {
	t.Parallel()

	html, err := renderMarkdown("Watch the hearing at https://www.youtube.com/watch?v=dQw4w9WgXcQ today.")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if strings.Contains(html, "<iframe") {
		t.Fatalf("expected inline link to stay a link, got: %s", html)
	}
	if !strings.Contains(html, "<a href=") {
		t.Fatalf("expected the URL to be linkified, got: %s", html)
	}
}

func TestRenderMarkdown_RejectsLookalikeVideoDomains(t *testing.T) {
	t.Parallel()

	for _, markdown := range []string{
		"https://notyoutube.com/watch?v=dQw4w9WgXcQ",
		"https://vimeo.com.example.org/76979871",
	} {
		html, err := renderMarkdown(markdown)
		if err != nil {
			t.Fatalf("render markdown: %v", err)
		}
		if strings.Contains(html, "<iframe") {
			t.Fatalf("expected no iframe for %q, got: %s", markdown, html)
		}
	}
}

func TestRenderMarkdown_StripsForeignIframes(t *testing.T) {
	t.Parallel()

	html, err := renderMarkdown(`<iframe src="https://evil.example.com/frame"></iframe>` + "\n\n<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if strings.Contains(html, "evil.example.com") || strings.Contains(html, "<script") {
		t.Fatalf("expected foreign markup to be removed, got: %s", html)
	}
}
