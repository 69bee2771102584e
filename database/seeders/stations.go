package seeders

import (
	"log"

	"gorm.io/gorm"

	"bps-backoffice/models/station"
)

// SeedStations makes sure the standard parcel stations exist; missing rows are
// inserted, present rows are left alone.
func SeedStations(db *gorm.DB) {
	stations := []station.Station{
		{StationName: "Chennai Central", Address: "Parcel Depot, Chennai Central", Phone: "04425330001"},
		{StationName: "Coimbatore", Address: "Parcel Depot, Coimbatore Junction", Phone: "04222330002"},
		{StationName: "Madurai", Address: "Parcel Depot, Madurai Junction", Phone: "04522330003"},
		{StationName: "Salem", Address: "Parcel Depot, Salem Junction", Phone: "04272330004"},
		{StationName: "Tiruchirappalli", Address: "Parcel Depot, Tiruchirappalli Junction", Phone: "04312330005"},
		{StationName: "Tirunelveli", Address: "Parcel Depot, Tirunelveli Junction", Phone: "04622330006"},
		{StationName: "Erode", Address: "Parcel Depot, Erode Junction", Phone: "04242330007"},
		{StationName: "Vellore", Address: "Parcel Depot, Vellore Cantonment", Phone: "04162330008"},
	}

	var existingNames []string
	if err := db.Model(&station.Station{}).Pluck("station_name", &existingNames).Error; err != nil {
		log.Printf("Failed to fetch existing station names: %v", err)
		return
	}

	existingNamesMap := make(map[string]bool)
	for _, name := range existingNames {
		existingNamesMap[name] = true
	}

	var missing []station.Station
	for _, s := range stations {
		if !existingNamesMap[s.StationName] {
			missing = append(missing, s)
		}
	}

	if len(missing) == 0 {
		log.Printf("All stations are already present. No seeding needed.")
		return
	}

	log.Printf("Seeding %d missing stations...", len(missing))
	for _, s := range missing {
		if err := db.Create(&s).Error; err != nil {
			log.Printf("Failed to seed station %s: %v", s.StationName, err)
		}
	}
}
