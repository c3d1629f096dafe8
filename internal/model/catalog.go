package model

// ServiceItem is one ritual or consultation offering.
type ServiceItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        Price    `json:"price"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	InstagramURL string   `json:"instagramUrl,omitempty"`
	Tags         []string `json:"tags"`
}

// CourseItem is one teaching offering.
type CourseItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        Price  `json:"price"`
	Duration     string `json:"duration"`
	Level        string `json:"level"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	InstagramURL string `json:"instagramUrl,omitempty"`
}

// BlogPost content is rich-text HTML authored in the CMS. It is
// sanitized on save, not on read.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
	Category string   `json:"category,omitempty"`
}
