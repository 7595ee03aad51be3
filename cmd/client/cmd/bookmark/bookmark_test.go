package bookmark

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmarkhub/internal/domain/item"
)

func TestBuildDraft(t *testing.T) {
	readFile := func(path string) ([]byte, error) {
		if path == "missing.png" {
			return nil, errors.New("no such file")
		}
		return []byte("data:" + path), nil
	}

	tests := []struct {
		name    string
		kind    string
		content string
		file    string
		tags    []string
		want    item.Draft
		wantErr string
	}{
		{
			name:    "default link with deduped tags",
			content: "https://go.dev",
			tags:    []string{"go", "lang", "go"},
			want:    item.Draft{Kind: item.KindLink, Title: "T", Content: item.LinkContent{URL: "https://go.dev"}, Tags: item.Tags{"go", "lang"}},
		},
		{
			name:    "text",
			kind:    "text",
			content: "hello",
			want:    item.Draft{Kind: item.KindText, Title: "T", Content: item.TextContent{Body: "hello"}},
		},
		{
			name: "file implies photo",
			file: "dir/cat.png",
			want: item.Draft{Kind: item.KindPhoto, Title: "T", Content: item.PhotoUpload{Filename: "cat.png", Data: []byte("data:dir/cat.png")}},
		},
		{
			name:    "photo url",
			kind:    "photo",
			content: "https://img/x.png",
			want:    item.Draft{Kind: item.KindPhoto, Title: "T", Content: item.PhotoURL{URL: "https://img/x.png"}},
		},
		{name: "unknown kind", kind: "video", wantErr: "неизвестный тип"},
		{name: "file for text", kind: "text", file: "a.png", wantErr: "--file"},
		{name: "unreadable file", file: "missing.png", wantErr: "ошибка чтения файла"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildDraft(tt.kind, "T", tt.content, tt.file, tt.tags, readFile)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind, got.Kind)
			assert.Equal(t, tt.want.Content, got.Content)
			assert.Equal(t, tt.want.Tags.Slice(), got.Tags.Slice())
		})
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, nil))
	assert.Equal(t, "Закладок пока нет\n", buf.String())

	buf.Reset()
	err := printTable(&buf, []item.Item{{
		ID: "id-1", Kind: item.KindText, Title: "Note", Content: "line one\nline two",
		Tags: item.Tags{"a", "b"}, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "id-1")
	assert.Contains(t, lines[1], "Text")
	assert.Contains(t, lines[1], "line one line two")
	assert.Contains(t, lines[1], "a,b")
}

func TestPrintJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		it   item.Item
		want string
	}{
		{"link", item.Item{Kind: item.KindLink, Content: "https://go.dev"}, "https://go.dev"},
		{"text collapses whitespace", item.Item{Kind: item.KindText, Content: "one\n  two\tthree"}, "one two three"},
		{"photo", item.Item{Kind: item.KindPhoto, Content: "https://store/u1/a.png"}, "[фото] https://store/u1/a.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.it.Payload()))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
