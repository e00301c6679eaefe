package models

// PostCreateRequest is the body for both POST /post and PUT /posts/:id.
// Updates are full replacements, so the shapes are identical.
type PostCreateRequest struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content"`
	Excerpt    string     `json:"excerpt" binding:"max=500"`
	CoverImage string     `json:"coverImage"`
	Status     PostStatus `json:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	Tags       []string   `json:"tags"`
}

type PostListParams struct {
	Status         string `form:"status" binding:"omitempty,oneof=DRAFT PUBLISHED"`
	Tag            string `form:"tag"`
	Limit          int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Offset         int    `form:"offset,default=0" binding:"omitempty,min=0"`
	IncludeContent bool   `form:"includeContent"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

type PostListResponse struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
}

type TagRequest struct {
	Name string `json:"name" binding:"required"`
}

type StatsResponse struct {
	TotalPosts     int64 `json:"totalPosts"`
	PublishedPosts int64 `json:"publishedPosts"`
	DraftPosts     int64 `json:"draftPosts"`
	TotalTags      int64 `json:"totalTags"`
}
