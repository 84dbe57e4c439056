package domain

// Objective is the closed set of campaign goals.
type Objective string

const (
	ObjectiveTraffic     Objective = "Traffic"
	ObjectiveConversions Objective = "Conversions"
)

// Valid reports whether o is one of the known objectives.
func (o Objective) Valid() bool {
	return o == ObjectiveTraffic || o == ObjectiveConversions
}

// Campaign represents a stored advertising campaign. CampaignID and
// CreatedAt are assigned by the service at creation time and never change
// afterwards; the remaining fields come from the caller. UserID is the
// partition key under which the record is stored.
type Campaign struct {
	CampaignID string    `json:"campaignId"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	Objective  Objective `json:"objective"`
	Budget     float64   `json:"budget"`
	Audience   string    `json:"audience"`
	CreatedAt  string    `json:"createdAt"`
}

// CampaignInput carries the caller-supplied fields of a campaign. The
// validate tags are the single schema for campaign input: the HTTP handler
// enforces them authoritatively and the API client form enforces the same
// rules before submission.
type CampaignInput struct {
	UserID    string    `json:"userId" validate:"required"`
	Name      string    `json:"name" validate:"required,max=100"`
	Objective Objective `json:"objective" validate:"required,oneof=Traffic Conversions"`
	Budget    float64   `json:"budget" validate:"required,gt=0"`
	Audience  string    `json:"audience" validate:"required,min=10,max=500"`
}

// Validate checks the input against the campaign schema and returns one
// error per failing field. A nil result means the input is acceptable.
func (in CampaignInput) Validate() []FieldError {
	return validateStruct(in)
}

// Campaign converts validated input into a campaign record with the given
// identity fields.
func (in CampaignInput) Campaign(campaignID, createdAt string) Campaign {
	return Campaign{
		CampaignID: campaignID,
		UserID:     in.UserID,
		Name:       in.Name,
		Objective:  in.Objective,
		Budget:     in.Budget,
		Audience:   in.Audience,
		CreatedAt:  createdAt,
	}
}
