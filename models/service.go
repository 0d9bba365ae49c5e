package models

// Service is one provider listing in the services table.
type Service struct {
	ID           uint     `gorm:"primaryKey;autoIncrement"`
	ServiceName  string   `gorm:"type:varchar(255);not null"`
	Title        string   `gorm:"type:varchar(255);not null"`
	ProviderName string   `gorm:"type:varchar(255);not null"`
	Location     *string  `gorm:"type:varchar(255)"`
	Description  *string  `gorm:"column:service_description;type:text"`
	Rating       *float64 `gorm:"type:decimal(3,2)"`
	PricePerHour *float64 `gorm:"type:decimal(10,2);not null"`
}

func (Service) TableName() string {
	return "services"
}

// ServiceResponse is the shape the frontend consumes. The "Title" and
// "serdescription" keys are kept as deployed clients read them.
type ServiceResponse struct {
	ServiceName  string  `json:"serviceName"`
	Title        string  `json:"Title"`
	ProviderName string  `json:"providerName"`
	Location     *string `json:"location"`
	Description  *string `json:"serdescription"`
	Rating       float64 `json:"rating"`
	PricePerHour float64 `json:"pricePerHour"`
}

// ToResponse maps a stored row to its JSON record. Missing rating or price
// become 0.
func ToResponse(s Service) ServiceResponse {
	return ServiceResponse{
		ServiceName:  s.ServiceName,
		Title:        s.Title,
		ProviderName: s.ProviderName,
		Location:     s.Location,
		Description:  s.Description,
		Rating:       valueOrZero(s.Rating),
		PricePerHour: valueOrZero(s.PricePerHour),
	}
}

// ToResponses maps rows in order. The result is never nil.
func ToResponses(rows []Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToResponse(row))
	}
	return out
}

func valueOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
