package cli

const articleListTemplate = `
=== Articles ({{ .Status }}) ===

{{- if eq (len .Articles) 0 }}
No articles found.
{{ else }}
Page {{ .Page }} of {{ .Pages }} ({{ .Total }} total):

{{- range .Articles }}
- {{ .Title }}
   ID:       {{ .ID }}
   Slug:     {{ .Slug }}
   {{- if .Summary }}
   Summary:  {{ truncate .Summary 80 }}
   {{- end }}
   Comments: {{ .CommentCount }}

{{- end }}
Use 'unipress articles show <id>' to read an article.
{{- end }}
`

const articleTemplate = `
=== {{ .Article.Title }} ===

ID:      {{ .Article.ID }}
Slug:    {{ .Article.Slug }}
Status:  {{ .Article.Status }}
Author:  {{ .Article.AuthorID }}
{{- if .Article.PublishedAt }}
Published: {{ .Article.PublishedAt.Format "2006-01-02 15:04" }}
{{- end }}
{{- if .Article.Summary }}

{{ .Article.Summary }}
{{- end }}
---
{{ .Article.Content }}
---
Comments: {{ .Article.CommentCount }}
{{- if .Reactions }}
Reactions:{{ range .Reactions }} {{ .Kind }}={{ .Count }}{{ if .UserReacted }}*{{ end }}{{ end }}
{{- end }}
`

const commentsTemplate = `
=== Comments ===

{{- if eq (len .) 0 }}
No comments yet.

Use 'unipress comments post <article-id>' to start the discussion.
{{ else }}
{{- range . }}
{{ if .IsReply }}  ↳ {{ else }}- {{ end }}{{ .Content }}
     ID: {{ .ID }}  by {{ author . }}
{{- end }}
{{ end }}
`

const reactionsTemplate = `Reactions:{{ range . }} {{ .Kind }}={{ .Count }}{{ if .UserReacted }}*{{ end }}{{ end }}
`

const bookmarksTemplate = `
=== Bookmarks ===

{{- if eq (len .) 0 }}
No bookmarks yet.

Use 'unipress bookmarks toggle <article-id>' to save an article.
{{ else }}
{{- range . }}
- {{ .ArticleID }}  saved {{ .CreatedAt.Format "2006-01-02 15:04" }}
{{- end }}
{{ end }}
`

const shareTemplate = `
=== Share preview ===

og:title        {{ .Title }}
og:description  {{ .Description }}
og:url          {{ .URL }}
og:site_name    {{ .SiteName }}
og:type         {{ .Type }}
{{- if .Image }}
og:image        {{ .Image }}
{{- end }}
`

const settingsTemplate = `
=== Site settings ===

site_name:           {{ .SiteName }}
tagline:             {{ .Tagline }}
base_url:            {{ .BaseURL }}
comments_enabled:    {{ .CommentsEnabled }}
anonymous_reactions: {{ .AnonymousReactions }}
`
