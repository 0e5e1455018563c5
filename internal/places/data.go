package places

// Built-in dataset: a fictional stretch of Atlantic coastline centered
// around 45.0N, 1.5W. Coordinates cluster so that most results are on
// screen at the default camera.
var dataset = []Place{
	{ID: 1, Name: "Old Harbor", Kind: "harbor", Lat: 44.98, Lon: -1.52, Popularity: 92},
	{ID: 2, Name: "Harbor Light Cafe", Kind: "cafe", Lat: 44.97, Lon: -1.51, Popularity: 78},
	{ID: 3, Name: "North Quay Market", Kind: "market", Lat: 45.01, Lon: -1.53, Popularity: 83},
	{ID: 4, Name: "Quayside Bakery", Kind: "bakery", Lat: 45.00, Lon: -1.50, Popularity: 71},
	{ID: 5, Name: "Saltgrass Beach", Kind: "beach", Lat: 44.92, Lon: -1.58, Popularity: 88},
	{ID: 6, Name: "Cormorant Point Lighthouse", Kind: "lighthouse", Lat: 44.89, Lon: -1.62, Popularity: 74},
	{ID: 7, Name: "Maritime Museum", Kind: "museum", Lat: 44.99, Lon: -1.49, Popularity: 66},
	{ID: 8, Name: "Dune Walk Viewpoint", Kind: "viewpoint", Lat: 44.94, Lon: -1.57, Popularity: 59},
	{ID: 9, Name: "Heron Marsh Park", Kind: "park", Lat: 45.04, Lon: -1.47, Popularity: 55},
	{ID: 10, Name: "The Anchorage Hotel", Kind: "hotel", Lat: 44.98, Lon: -1.50, Popularity: 62},
	{ID: 11, Name: "Ferry Terminal", Kind: "harbor", Lat: 44.96, Lon: -1.54, Popularity: 81},
	{ID: 12, Name: "Blackrock Cove", Kind: "beach", Lat: 44.87, Lon: -1.64, Popularity: 49},
	{ID: 13, Name: "Seawall Promenade", Kind: "viewpoint", Lat: 44.97, Lon: -1.53, Popularity: 70},
	{ID: 14, Name: "Tidepool Aquarium", Kind: "museum", Lat: 44.95, Lon: -1.51, Popularity: 64},
	{ID: 15, Name: "Driftwood Coffee", Kind: "cafe", Lat: 44.93, Lon: -1.55, Popularity: 58},
	{ID: 16, Name: "Gullwing Pier", Kind: "harbor", Lat: 44.99, Lon: -1.55, Popularity: 52},
	{ID: 17, Name: "Harborview Market Hall", Kind: "market", Lat: 44.98, Lon: -1.51, Popularity: 76},
	{ID: 18, Name: "Lantern Street Bakery", Kind: "bakery", Lat: 45.02, Lon: -1.49, Popularity: 61},
	{ID: 19, Name: "Customs House", Kind: "museum", Lat: 44.97, Lon: -1.50, Popularity: 47},
	{ID: 20, Name: "Spindrift Hostel", Kind: "hotel", Lat: 44.91, Lon: -1.59, Popularity: 38},
	{ID: 21, Name: "Osprey Cliff Trail", Kind: "park", Lat: 44.86, Lon: -1.60, Popularity: 57},
	{ID: 22, Name: "The Shipwright Arms", Kind: "cafe", Lat: 44.96, Lon: -1.52, Popularity: 69},
	{ID: 23, Name: "Low Tide Oyster Bar", Kind: "cafe", Lat: 44.95, Lon: -1.56, Popularity: 72},
	{ID: 24, Name: "Signal Hill", Kind: "viewpoint", Lat: 45.03, Lon: -1.55, Popularity: 63},
	{ID: 25, Name: "Brine Works", Kind: "museum", Lat: 45.00, Lon: -1.54, Popularity: 41},
	{ID: 26, Name: "Kelpford Station", Kind: "harbor", Lat: 45.06, Lon: -1.46, Popularity: 45},
	{ID: 27, Name: "Moorings Chandlery", Kind: "market", Lat: 44.97, Lon: -1.55, Popularity: 33},
	{ID: 28, Name: "Petrel House", Kind: "hotel", Lat: 45.01, Lon: -1.48, Popularity: 54},
	{ID: 29, Name: "Wrack Line Gallery", Kind: "museum", Lat: 44.94, Lon: -1.53, Popularity: 36},
	{ID: 30, Name: "South Breakwater", Kind: "viewpoint", Lat: 44.93, Lon: -1.52, Popularity: 48},
	{ID: 31, Name: "Anchor Seed Garden", Kind: "park", Lat: 44.99, Lon: -1.46, Popularity: 42},
	{ID: 32, Name: "Narrow Stair Beach", Kind: "beach", Lat: 44.90, Lon: -1.61, Popularity: 51},
	{ID: 33, Name: "Harbormaster's Office", Kind: "harbor", Lat: 44.98, Lon: -1.53, Popularity: 29},
	{ID: 34, Name: "Pilot Boat Coffee", Kind: "cafe", Lat: 45.00, Lon: -1.52, Popularity: 67},
	{ID: 35, Name: "Mussel Bed Flats", Kind: "beach", Lat: 44.95, Lon: -1.60, Popularity: 35},
	{ID: 36, Name: "Old Ropewalk", Kind: "park", Lat: 44.96, Lon: -1.49, Popularity: 44},
	{ID: 37, Name: "Fogbell Bakery", Kind: "bakery", Lat: 44.94, Lon: -1.50, Popularity: 53},
	{ID: 38, Name: "Ledger & Tide Books", Kind: "market", Lat: 44.98, Lon: -1.49, Popularity: 39},
	{ID: 39, Name: "Compass Rose Inn", Kind: "hotel", Lat: 44.92, Lon: -1.54, Popularity: 56},
	{ID: 40, Name: "Estuary Bird Hide", Kind: "viewpoint", Lat: 45.05, Lon: -1.52, Popularity: 31},
}

// Poll is a lightweight community question shown in the polls overlay.
type Poll struct {
	Question string
	Options  []PollOption
}

// PollOption is one answer with its current vote count.
type PollOption struct {
	Label string
	Votes int
}

// SamplePolls returns the demo polls shown in the polls overlay.
func SamplePolls() []Poll {
	return []Poll{
		{
			Question: "Best coffee near the harbor?",
			Options: []PollOption{
				{Label: "Harbor Light Cafe", Votes: 214},
				{Label: "Pilot Boat Coffee", Votes: 187},
				{Label: "Driftwood Coffee", Votes: 95},
			},
		},
		{
			Question: "Favorite sunset spot?",
			Options: []PollOption{
				{Label: "Signal Hill", Votes: 311},
				{Label: "South Breakwater", Votes: 268},
				{Label: "Dune Walk Viewpoint", Votes: 122},
			},
		},
		{
			Question: "Where to take visiting family?",
			Options: []PollOption{
				{Label: "Maritime Museum", Votes: 154},
				{Label: "Tidepool Aquarium", Votes: 149},
				{Label: "Old Harbor", Votes: 133},
			},
		},
	}
}
