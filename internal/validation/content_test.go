package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
		wantErr bool
	}{
		{name: "valid", content: "Hello"},
		{name: "valid - unicode", content: "Привет, мир"},
		{name: "valid - max length", content: strings.Repeat("я", MaxCommentLen)},
		{name: "invalid - empty", content: "", wantErr: true, errMsg: "comment cannot be empty"},
		{name: "invalid - whitespace only", content: " \t\n ", wantErr: true, errMsg: "comment cannot be empty"},
		{name: "invalid - too long", content: strings.Repeat("a", MaxCommentLen+1), wantErr: true, errMsg: "must not exceed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateComment(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateArticle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		summary string
		content string
		errMsg  string
		wantErr bool
	}{
		{name: "valid", title: "Open day", summary: "Campus tour", content: "Body"},
		{name: "invalid - empty title", title: "  ", content: "Body", wantErr: true, errMsg: "title cannot be empty"},
		{name: "invalid - short title", title: "ab", content: "Body", wantErr: true, errMsg: "at least 3"},
		{name: "invalid - long title", title: strings.Repeat("t", MaxTitleLen+1), content: "Body", wantErr: true, errMsg: "title must not exceed"},
		{name: "invalid - long summary", title: "Title", summary: strings.Repeat("s", MaxSummaryLen+1), content: "Body", wantErr: true, errMsg: "summary"},
		{name: "invalid - empty content", title: "Title", content: "\n", wantErr: true, errMsg: "content cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArticle(tt.title, tt.summary, tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "open-day-2026", Slugify("Open Day 2026!"))
	assert.Equal(t, "hello-world", Slugify("  Hello,   World  "))
	assert.Equal(t, "", Slugify("Привет"))
}
