package crawl

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders a progress event as a single status line.
// Start and finish events render as the empty string.
func FormatProgress(event ProgressEvent, maxURLLen int) string {
	prefix := fmt.Sprintf("[%d/%d] %s", event.Completed, event.Total, TruncateURL(event.URL, maxURLLen))
	switch event.Type {
	case ProgressCompleted:
		fields := 0
		if event.Result != nil && event.Result.Listing != nil {
			fields = event.Result.Listing.FieldCount()
		}
		return fmt.Sprintf("%s: %d fields", prefix, fields)
	case ProgressSkipped:
		return prefix + ": already parsed, skipping"
	case ProgressFailed:
		return fmt.Sprintf("%s: %v", prefix, event.Error)
	}
	return ""
}
