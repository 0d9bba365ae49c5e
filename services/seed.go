package services

import "madad-backend/models"

type seedRow struct {
	serviceName  string
	title        string
	providerName string
	location     string
	description  string
	rating       float64
	pricePerHour float64
}

var seedRows = []seedRow{
	{"Plumbing", "Expert Plumbing Fix", "Ahmed Musa", "Khartoum", "Professional plumbing services including leak repairs, pipe installations, and drainage solutions.", 4.75, 5000.00},
	{"Electrical Repair", "Home Wiring Expert", "Sami Idris", "Omdurman", "Certified electrician available for home wiring, socket installation, and light fixture repair.", 4.60, 4500.00},
	{"AC Maintenance", "CoolAir Maintenance", "CoolFix Sudan", "Bahri", "Air conditioner maintenance, gas refilling, and filter cleaning for homes and offices.", 4.85, 6000.00},
	{"Painting", "Quick Home Painting", "Alwan Plus", "Port Sudan", "Interior and exterior painting services with color consultation and quick turnaround.", 4.40, 4000.00},
	{"Carpentry", "Precision Carpentry", "Abdelrahman Koko", "Khartoum", "Custom furniture, door and window repairs, and built-in shelving installation.", 4.70, 5500.00},
	{"Cleaning Services", "Shiny Homes", "Shiny Homes Sudan", "Nyala", "Reliable cleaning team offering deep home and office cleaning services.", 4.90, 3000.00},
	{"Satellite Installation", "SudSat Services", "Yasir Elamin", "Kassala", "Satellite dish installation, setup, and troubleshooting for all TV packages.", 4.50, 3500.00},
	{"Handyman", "Fix-It-All Guy", "FixIt Hub", "Khartoum North", "One-stop handyman services: mounting, repairs, furniture assembly and more.", 4.65, 4000.00},
	{"Tile Work", "Pro Tiling Services", "Hiba Farouk", "El Obeid", "Bathroom and kitchen tile work, sealing, and water-resistant finishing.", 4.55, 4800.00},
	{"Generator Repair", "PowerFix Repairs", "PowerFix Engineering", "Al-Fashir", "Repairs and maintenance for residential and commercial generators.", 4.35, 5500.00},
}

// SeedServices returns a fresh copy of the initial catalog.
func SeedServices() []models.Service {
	out := make([]models.Service, 0, len(seedRows))
	for _, r := range seedRows {
		r := r
		out = append(out, models.Service{
			ServiceName:  r.serviceName,
			Title:        r.title,
			ProviderName: r.providerName,
			Location:     &r.location,
			Description:  &r.description,
			Rating:       &r.rating,
			PricePerHour: &r.pricePerHour,
		})
	}
	return out
}
