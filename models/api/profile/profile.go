package profileapimodels

// Review is append-only feedback attached to a worker profile.
type Review struct {
	EventID      int64  `json:"event_id"`
	ReviewText   string `json:"review_text"`
	ReviewerName string `json:"reviewer_name"`
	Timestamp    string `json:"timestamp"`
	EventName    string `json:"event_name"`
}

type ProfileData struct {
	Age            int      `json:"age"`
	City           string   `json:"city"`
	CompanyID      string   `json:"company_id"`
	CompanyName    string   `json:"company_name"`
	Email          string   `json:"email"`
	FullName       string   `json:"full_name"`
	Phone          string   `json:"phone"`
	Rating         float64  `json:"rating"`
	Reviews        []Review `json:"reviews"`
	HRManagerName  string   `json:"hr_manager_name"`
	HRManagerPhone string   `json:"hr_manager_phone"`
}
