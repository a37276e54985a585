package domain

// Nagpur returns the built-in Nagpur market dataset. Every call returns a
// fresh copy, so callers may not affect each other.
//
// Zone, locality, landmark and keyword order is significant: resolution is
// first-match in this order.
func Nagpur() *Dataset {
	return &Dataset{
		Market:      "nagpur",
		DefaultZone: "central",
		Zones: []Zone{
			{
				Key:      "central",
				Name:     "Central Nagpur",
				BaseRate: 4500,
				Localities: []string{
					"Sitabuldi", "Dharampeth", "Mahal", "Gandhibagh", "Bajaj Nagar",
					"Ramdaspeth", "Civil Lines", "Mominpura", "Itwari", "Jaripatka",
				},
				Keywords:    []string{"sitabuldi", "dharampeth", "mahal", "civil", "itwari", "sadar", "gandhi"},
				GrowthRate:  12.5,
				DemandIndex: 85,
				SupplyIndex: 60,
			},
			{
				Key:      "east",
				Name:     "East Nagpur",
				BaseRate: 4200,
				Localities: []string{
					"Laxmi Nagar", "Shankar Nagar", "Mankapur", "Pratap Nagar",
					"Besa", "Cotton Market", "Nandanvan", "Ajni",
				},
				Keywords:    []string{"laxmi", "shankar", "mankapur", "pratap", "besa", "nandanvan", "cotton"},
				GrowthRate:  10.2,
				DemandIndex: 78,
				SupplyIndex: 65,
			},
			{
				Key:      "west",
				Name:     "West Nagpur",
				BaseRate: 4800,
				Localities: []string{
					"Dharampeth", "Dhantoli", "Hanuman Nagar", "Seminary Hills",
					"CA Road", "Gokulpeth", "Ramnagar", "South Ambazari Road",
				},
				Keywords:    []string{"dhantoli", "seminary", "futala", "ambazari", "hanuman", "gokulpeth", "ramnagar"},
				GrowthRate:  14.8,
				DemandIndex: 92,
				SupplyIndex: 55,
			},
			{
				Key:      "south",
				Name:     "South Nagpur",
				BaseRate: 3800,
				Localities: []string{
					"Wadi", "Hingna", "Telephone Exchange Square", "Pachpaoli",
					"Vayusena Nagar", "Sonegaon", "MIHAN", "Airport Area",
				},
				Keywords:    []string{"wadi", "hingna", "sonegaon", "airport", "mihan", "pachpaoli", "vayusena"},
				GrowthRate:  15.5,
				DemandIndex: 88,
				SupplyIndex: 70,
			},
			{
				Key:      "north",
				Name:     "North Nagpur",
				BaseRate: 3200,
				Localities: []string{
					"Khamla", "Kalamna", "Nara", "Bhandewadi", "Khare Town",
					"Ashi Nagar", "Indora", "Koradi Road",
				},
				Keywords:    []string{"khamla", "kalamna", "nara", "khare", "ashi", "indora", "koradi"},
				GrowthRate:  9.5,
				DemandIndex: 70,
				SupplyIndex: 75,
			},
			{
				Key:      "outskirts",
				Name:     "Outer Nagpur",
				BaseRate: 2500,
				Localities: []string{
					"Kamptee", "Kanhan", "Waddhamna", "Fetri", "Parseoni",
					"Umred Road", "Katol Road", "Kalmeshwar",
				},
				Keywords:    []string{"kamptee", "kanhan", "waddhamna", "fetri", "umred", "katol", "kalmeshwar"},
				GrowthRate:  11.2,
				DemandIndex: 65,
				SupplyIndex: 80,
			},
		},
		Landmarks: []Landmark{
			{Name: "VCA Stadium", Zone: "central", Multiplier: 1.15},
			{Name: "Empress City Mall", Zone: "west", Multiplier: 1.12},
			{Name: "Futala Lake", Zone: "west", Multiplier: 1.20},
			{Name: "Ambazari Lake", Zone: "west", Multiplier: 1.18},
			{Name: "Seminary Hills", Zone: "west", Multiplier: 1.25},
			{Name: "Airport", Zone: "south", Multiplier: 1.10},
			{Name: "MIHAN", Zone: "south", Multiplier: 1.15},
			{Name: "AIIMS", Zone: "central", Multiplier: 1.20},
			{Name: "IIM Nagpur", Zone: "central", Multiplier: 1.18},
			{Name: "VNIT", Zone: "south", Multiplier: 1.15},
			{Name: "GMC", Zone: "central", Multiplier: 1.12},
			{Name: "Railway Station", Zone: "central", Multiplier: 1.10},
			{Name: "Sadar", Zone: "central", Multiplier: 1.08},
			{Name: "Kasturchand Park", Zone: "central", Multiplier: 1.10},
		},
		PropertyTypes: []Option{
			{ID: "apartment", Name: "Apartment", Multiplier: 1.0},
			{ID: "independent", Name: "Independent House", Multiplier: 1.15},
			{ID: "villa", Name: "Villa", Multiplier: 1.30},
			{ID: "penthouse", Name: "Penthouse", Multiplier: 1.50},
			{ID: "duplex", Name: "Duplex", Multiplier: 1.25},
		},
		BuildingAges: []Option{
			{ID: "new", Name: "Under Construction", Multiplier: 1.10},
			{ID: "0-5", Name: "0-5 Years", Multiplier: 1.05},
			{ID: "5-10", Name: "5-10 Years", Multiplier: 1.0},
			{ID: "10-15", Name: "10-15 Years", Multiplier: 0.95},
			{ID: "15+", Name: "15+ Years", Multiplier: 0.85},
		},
		Amenities: []Amenity{
			FlatCostAmenity("parking", "Covered Parking", 150000),
			MultiplierAmenity("gym", "Gymnasium", 1.03),
			MultiplierAmenity("pool", "Swimming Pool", 1.05),
			MultiplierAmenity("garden", "Garden", 1.02),
			MultiplierAmenity("security", "24/7 Security", 1.02),
			MultiplierAmenity("lift", "Lift", 1.04),
			MultiplierAmenity("powerbackup", "Power Backup", 1.02),
			MultiplierAmenity("clubhouse", "Club House", 1.04),
		},
	}
}
