package mock

import "github.com/fwojciec/clipvault"

var _ clipvault.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of clipvault.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html, sourceURL string) *clipvault.ArticleContent
}

func (e *ArticleExtractor) ExtractArticle(html, sourceURL string) *clipvault.ArticleContent {
	return e.ExtractArticleFn(html, sourceURL)
}

var _ clipvault.VideoExtractor = (*VideoExtractor)(nil)

// VideoExtractor is a mock implementation of clipvault.VideoExtractor.
type VideoExtractor struct {
	ExtractVideoFn func(html string) *clipvault.VideoContent
}

func (e *VideoExtractor) ExtractVideo(html string) *clipvault.VideoContent {
	return e.ExtractVideoFn(html)
}
