package handler

import (
	"fmt"
	htmlstd "html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	videoEmbedLinePattern = regexp.MustCompile(`^\s*<?((?:https?://)?[^\s]+)>?\s*$`)
	videoEmbedSrcPattern  = regexp.MustCompile(
		`^https://(?:www\.youtube-nocookie\.com/embed/|player\.vimeo\.com/video/)`,
	)
	videoEmbedTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`) // for YouTube t=1h2m3s
	listIndexPattern      = regexp.MustCompile(`^\d+\.\s+`)
)

func buildContentSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("class", "data-video-embed", "data-video-platform").OnElements("div")
	policy.AllowAttrs("src").Matching(videoEmbedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

type videoEmbed struct {
	Platform string
	EmbedURL string
}

// applyVideoEmbeds replaces bare YouTube or Vimeo links standing on their own
// line with an embedded player. Code blocks, quotes and lists are left alone.
func applyVideoEmbeds(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return markdown
	}

	lines := strings.Split(markdown, "\n")
	inFence := false
	fenceMarker := ""

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := detectFenceMarker(trimmed); marker != "" {
			if inFence {
				if strings.HasPrefix(trimmed, fenceMarker) {
					inFence = false
					fenceMarker = ""
				}
			} else {
				inFence = true
				fenceMarker = marker
			}
			continue
		}

		if inFence || isIndentedCodeLine(line) || shouldSkipEmbedLine(trimmed) {
			continue
		}

		match := videoEmbedLinePattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		embed, ok := parseVideoEmbed(match[1])
		if !ok {
			continue
		}
		lines[i] = buildVideoEmbedHTML(embed)
	}

	return strings.Join(lines, "\n")
}

func detectFenceMarker(line string) string {
	if strings.HasPrefix(line, "```") {
		return "```"
	}
	if strings.HasPrefix(line, "~~~") {
		return "~~~"
	}
	return ""
}

func isIndentedCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

func shouldSkipEmbedLine(line string) bool {
	if line == "" || strings.HasPrefix(line, ">") {
		return true
	}
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ") {
		return true
	}
	return listIndexPattern.MatchString(line)
}

func parseVideoEmbed(raw string) (videoEmbed, bool) {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(raw), "<"), ">")
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Hostname() == "" {
		return videoEmbed{}, false
	}

	host := strings.ToLower(parsed.Hostname())
	switch {
	case host == "youtu.be" || isHostOrSubdomain(host, "youtube.com"):
		return parseYouTubeEmbed(parsed)
	case isHostOrSubdomain(host, "vimeo.com"):
		return parseVimeoEmbed(parsed)
	}
	return videoEmbed{}, false
}

func parseYouTubeEmbed(u *url.URL) (videoEmbed, bool) {
	var videoID string
	path := strings.Trim(u.Path, "/")

	if strings.ToLower(u.Hostname()) == "youtu.be" {
		videoID = path
	} else {
		switch {
		case path == "watch":
			videoID = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"):
			videoID = strings.TrimPrefix(path, "shorts/")
		case strings.HasPrefix(path, "embed/"):
			videoID = strings.TrimPrefix(path, "embed/")
		case strings.HasPrefix(path, "live/"):
			videoID = strings.TrimPrefix(path, "live/")
		}
	}
	videoID = strings.Split(videoID, "/")[0]
	if videoID == "" {
		return videoEmbed{}, false
	}

	values := url.Values{}
	values.Set("rel", "0")
	values.Set("modestbranding", "1")
	if start := parseYouTubeTime(u.Query().Get("t")); start > 0 {
		values.Set("start", strconv.Itoa(start))
	}

	return videoEmbed{
		Platform: "youtube",
		EmbedURL: "https://www.youtube-nocookie.com/embed/" + url.PathEscape(videoID) + "?" + values.Encode(),
	}, true
}

func parseYouTubeTime(value string) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(trimmed); err == nil {
		if seconds > 0 {
			return seconds
		}
		return 0
	}

	total := 0
	for _, match := range videoEmbedTimePattern.FindAllStringSubmatch(trimmed, -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil || value <= 0 {
			continue
		}
		switch strings.ToLower(match[2]) {
		case "h":
			total += value * 3600
		case "m":
			total += value * 60
		case "s":
			total += value
		}
	}
	return total
}

func parseVimeoEmbed(u *url.URL) (videoEmbed, bool) {
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if _, err := strconv.ParseUint(segments[i], 10, 64); err == nil {
			return videoEmbed{
				Platform: "vimeo",
				EmbedURL: "https://player.vimeo.com/video/" + segments[i],
			}, true
		}
	}
	return videoEmbed{}, false
}

func isHostOrSubdomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func buildVideoEmbedHTML(embed videoEmbed) string {
	return fmt.Sprintf(
		`<div class="video-embed" data-video-embed="true" data-video-platform="%s">`+
			`<iframe src="%s" title="Embedded video" loading="lazy" allow="encrypted-media; picture-in-picture" allowfullscreen frameborder="0" referrerpolicy="strict-origin-when-cross-origin"></iframe>`+
			`</div>`,
		htmlstd.EscapeString(embed.Platform),
		htmlstd.EscapeString(embed.EmbedURL),
	)
}
