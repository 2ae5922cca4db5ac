package request

type CreateResourceRequest struct {
	Name            string `json:"name" binding:"required"`
	PricePerMinCent int64  `json:"price_per_min_cent"`
}

type UpdateResourcePriceRequest struct {
	PricePerMinCent int64 `json:"price_per_min_cent"`
}

type UpdateResourceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
