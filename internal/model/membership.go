package model

// MemberTier is static reference data; tiers are not persisted.
type MemberTier struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	Color            string   `json:"color"`
	Discount         float64  `json:"discount"`
	PointsMultiplier float64  `json:"pointsMultiplier"`
	Features         []string `json:"features"`
	IsPopular        bool     `json:"isPopular,omitempty"`
}

type MembershipStatus string

const (
	StatusPending   MembershipStatus = "pending"
	StatusPaid      MembershipStatus = "paid"
	StatusCancelled MembershipStatus = "cancelled"
	StatusExpired   MembershipStatus = "expired"
)

// MembershipApplication records one application form submission.
// Timestamps are RFC 3339 strings, matching the collection files.
type MembershipApplication struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	DOB       string           `json:"dob"`
	Time      string           `json:"time,omitempty"`
	Tier      string           `json:"tier"`
	Status    MembershipStatus `json:"status"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	PaidAt    string           `json:"paidAt,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// MembershipTiers is the published tier table.
var MembershipTiers = []MemberTier{
	{
		ID:               "love",
		Name:             "「愛心」會員",
		Price:            6800,
		Color:            "#e5baba",
		Discount:         0.9,
		PointsMultiplier: 1,
		Features: []string{
			"風水檢測服務 1次",
			"玄學問答會議 2次",
			"傳統祭祀儀式 1次",
			"個人儀式及課程 9折",
		},
	},
	{
		ID:               "total-care",
		Name:             "「全面貼心」會員",
		Price:            9800,
		Color:            "#d4c4a8",
		Discount:         0.85,
		PointsMultiplier: 1.2,
		IsPopular:        true,
		Features: []string{
			"流年運程占卜 1次",
			"風水檢測服務 1次",
			"玄學問答會議 4次",
			"傳統祭祀儀式 1次",
			"個人儀式及課程 85折",
		},
	},
	{
		ID:               "supreme",
		Name:             "「萬事俱有滔滔」會員",
		Price:            12800,
		Color:            "#8b5a2b",
		Discount:         0.8,
		PointsMultiplier: 1.5,
		Features: []string{
			"流年占卜檢測 2次",
			"風水設計服務 (全套)",
			"玄學問答會議 12次",
			"傳統祭祀儀式 3次",
			"個人儀式及課程 8折",
		},
	},
	{
		ID:               "the-one",
		Name:             "「尊貴傳承」體驗",
		Price:            38000,
		Color:            "#000000",
		Discount:         0.7,
		PointsMultiplier: 2.0,
		Features: []string{
			"杜師傅一對一私人顧問 (全年)",
			"企業級風水戰略佈局",
			"私人定製高階法事無限次諮詢",
			"獲邀出席年度閉門晚宴",
			"所有靈物與課程 7折",
		},
	},
}

// FindTier looks up a tier by id.
func FindTier(id string) (MemberTier, bool) {
	for _, tier := range MembershipTiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return MemberTier{}, false
}
