package request

type ListResourcesQuery struct {
	Category string `form:"category" binding:"omitempty,resource_category"`
}
