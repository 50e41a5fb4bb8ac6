package patterns

import "strings"

// Keyword sets for tag inference. Matching is by substring against
// lowercased inputs; every predicate that matches contributes its tag
// independently.
var (
	audioKeywords = []string{
		"atmos", "dts", "truehd", "aac", "flac", "pcm",
		"dolby", "surround", "stereo", "mono", "sound", "audio",
	}
	videoKeywords = []string{
		"hdr", "dv", "dolby vision", "hevc", "h265", "h264",
		"x264", "x265", "av1", "remux", "bluray", "webdl", "webrip",
	}
	streamingKeywords = []string{
		"netflix", "amazon", "amzn", "disney", "dsnp", "hbo", "hmax",
		"apple", "atvp", "hulu", "peacock", "paramount", "crunchyroll",
	}
	animeKeywords      = []string{"fansub", "dual audio", "uncensored", "raws"}
	resolutionKeywords = []string{"1080", "2160", "720", "480", "4k"}
)

// InferTags derives pattern file tags from the condition name, the pattern
// text, and the owning custom format name.
func InferTags(conditionName, pattern, formatName string) []string {
	nameLower := strings.ToLower(conditionName)
	patternLower := strings.ToLower(pattern)
	formatLower := strings.ToLower(formatName)

	tags := make([]string, 0, 4)

	if strings.Contains(nameLower, "release_group") ||
		(strings.HasPrefix(pattern, "^(") && strings.HasSuffix(pattern, ")$")) {
		tags = append(tags, "Release Group")
	}
	if containsAny(nameLower, audioKeywords) || containsAny(patternLower, audioKeywords) {
		tags = append(tags, "Audio")
	}
	if containsAny(nameLower, videoKeywords) || containsAny(patternLower, videoKeywords) {
		tags = append(tags, "Video")
	}
	if containsAny(nameLower, streamingKeywords) || containsAny(patternLower, streamingKeywords) {
		tags = append(tags, "Streaming")
	}
	if strings.Contains(formatLower, "anime") || containsAny(nameLower, animeKeywords) {
		tags = append(tags, "Anime")
	}
	if containsAny(patternLower, resolutionKeywords) {
		tags = append(tags, "Resolution")
	}

	return tags
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
