package handler

import "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/core/ports"

// projectRequest is the full payload for project create and update. Update is
// whole-document: omitted optional fields are reset to their zero values.
type projectRequest struct {
	Title         string   `json:"title" validate:"required"`
	TitleEn       string   `json:"title_en"`
	Category      string   `json:"category" validate:"required"`
	Client        string   `json:"client"`
	Description   string   `json:"description"`
	DescriptionEn string   `json:"description_en"`
	Software      []string `json:"software"`
	ThumbnailURL  string   `json:"thumbnail_url"`
	VideoURL      string   `json:"video_url"`
	Featured      bool     `json:"featured"`
	DisplayOrder  int      `json:"display_order"`
	IsActive      bool     `json:"is_active"`
}

func (r projectRequest) toInput() ports.ProjectInput {
	return ports.ProjectInput{
		Title:         r.Title,
		TitleEn:       r.TitleEn,
		Category:      r.Category,
		Client:        r.Client,
		Description:   r.Description,
		DescriptionEn: r.DescriptionEn,
		Software:      r.Software,
		ThumbnailURL:  r.ThumbnailURL,
		VideoURL:      r.VideoURL,
		Featured:      r.Featured,
		DisplayOrder:  r.DisplayOrder,
		IsActive:      r.IsActive,
	}
}
