package airport

// airports is the built-in coordinate table. Coordinates are decimal degrees.
var airports = []Airport{
	// United States
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", Latitude: 33.6407, Longitude: -84.4277},
	{Code: "LAX", Name: "Los Angeles International", Latitude: 33.9425, Longitude: -118.4081},
	{Code: "ORD", Name: "Chicago O'Hare International", Latitude: 41.9742, Longitude: -87.9073},
	{Code: "DFW", Name: "Dallas/Fort Worth International", Latitude: 32.8998, Longitude: -97.0403},
	{Code: "DEN", Name: "Denver International", Latitude: 39.8561, Longitude: -104.6737},
	{Code: "JFK", Name: "John F. Kennedy International", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "SFO", Name: "San Francisco International", Latitude: 37.6213, Longitude: -122.3790},
	{Code: "SEA", Name: "Seattle-Tacoma International", Latitude: 47.4502, Longitude: -122.3088},
	{Code: "LAS", Name: "McCarran International", Latitude: 36.0840, Longitude: -115.1537},
	{Code: "MCO", Name: "Orlando International", Latitude: 28.4312, Longitude: -81.3081},
	{Code: "EWR", Name: "Newark Liberty International", Latitude: 40.6895, Longitude: -74.1745},
	{Code: "CLT", Name: "Charlotte Douglas International", Latitude: 35.2144, Longitude: -80.9431},
	{Code: "PHX", Name: "Phoenix Sky Harbor International", Latitude: 33.4484, Longitude: -112.0740},
	{Code: "IAH", Name: "George Bush Intercontinental", Latitude: 29.9902, Longitude: -95.3368},
	{Code: "MIA", Name: "Miami International", Latitude: 25.7959, Longitude: -80.2870},
	{Code: "BOS", Name: "Logan International", Latitude: 42.3656, Longitude: -71.0096},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International", Latitude: 44.8848, Longitude: -93.2223},
	{Code: "FLL", Name: "Fort Lauderdale-Hollywood International", Latitude: 26.0742, Longitude: -80.1506},
	{Code: "DTW", Name: "Detroit Metropolitan Wayne County", Latitude: 42.2162, Longitude: -83.3554},
	{Code: "LGA", Name: "LaGuardia Airport", Latitude: 40.7769, Longitude: -73.8740},
	{Code: "PHL", Name: "Philadelphia International", Latitude: 39.8729, Longitude: -75.2437},
	{Code: "SLC", Name: "Salt Lake City International", Latitude: 40.7899, Longitude: -111.9791},
	{Code: "DCA", Name: "Ronald Reagan Washington National", Latitude: 38.8512, Longitude: -77.0402},
	{Code: "IAD", Name: "Washington Dulles International", Latitude: 38.9531, Longitude: -77.4565},
	{Code: "SAN", Name: "San Diego International", Latitude: 32.7338, Longitude: -117.1933},
	{Code: "TPA", Name: "Tampa International", Latitude: 27.9755, Longitude: -82.5332},
	{Code: "PDX", Name: "Portland International", Latitude: 45.5898, Longitude: -122.5951},
	{Code: "STL", Name: "Lambert-St. Louis International", Latitude: 38.7499, Longitude: -90.3744},
	{Code: "HNL", Name: "Daniel K. Inouye International", Latitude: 21.3099, Longitude: -157.8581},
	{Code: "BWI", Name: "Baltimore-Washington International", Latitude: 39.1774, Longitude: -76.6684},
	{Code: "MDW", Name: "Chicago Midway International", Latitude: 41.7868, Longitude: -87.7522},
	{Code: "AUS", Name: "Austin-Bergstrom International", Latitude: 30.1975, Longitude: -97.6664},
	{Code: "BNA", Name: "Nashville International", Latitude: 36.1245, Longitude: -86.6782},
	{Code: "OAK", Name: "Oakland International", Latitude: 37.7214, Longitude: -122.2208},
	{Code: "SMF", Name: "Sacramento International", Latitude: 38.6954, Longitude: -121.5908},
	{Code: "SJC", Name: "San Jose International", Latitude: 37.3639, Longitude: -121.9289},
	{Code: "RDU", Name: "Raleigh-Durham International", Latitude: 35.8776, Longitude: -78.7875},
	{Code: "MCI", Name: "Kansas City International", Latitude: 39.2976, Longitude: -94.7139},
	{Code: "CLE", Name: "Cleveland Hopkins International", Latitude: 41.4117, Longitude: -81.8498},
	{Code: "CMH", Name: "John Glenn Columbus International", Latitude: 39.9980, Longitude: -82.8919},
	{Code: "IND", Name: "Indianapolis International", Latitude: 39.7173, Longitude: -86.2944},
	{Code: "MKE", Name: "Milwaukee Mitchell International", Latitude: 42.9472, Longitude: -87.8966},
	{Code: "MSY", Name: "Louis Armstrong New Orleans International", Latitude: 29.9934, Longitude: -90.2581},
	{Code: "RIC", Name: "Richmond International", Latitude: 37.5052, Longitude: -77.3197},
	{Code: "CVG", Name: "Cincinnati/Northern Kentucky International", Latitude: 39.0488, Longitude: -84.6678},
	{Code: "PIT", Name: "Pittsburgh International", Latitude: 40.4915, Longitude: -80.2329},
	{Code: "SAT", Name: "San Antonio International", Latitude: 29.5337, Longitude: -98.4698},

	// Secondary US airports
	{Code: "BUR", Name: "Hollywood Burbank", Latitude: 34.2007, Longitude: -118.3585},
	{Code: "LGB", Name: "Long Beach", Latitude: 33.8177, Longitude: -118.1516},
	{Code: "SNA", Name: "John Wayne Airport", Latitude: 33.6757, Longitude: -117.8682},
	{Code: "ONT", Name: "Ontario International", Latitude: 34.0560, Longitude: -117.6012},
	{Code: "HOU", Name: "William P. Hobby", Latitude: 29.6454, Longitude: -95.2789},
	{Code: "DAL", Name: "Dallas Love Field", Latitude: 32.8471, Longitude: -96.8518},
	{Code: "PVD", Name: "Rhode Island T.F. Green International", Latitude: 41.7240, Longitude: -71.4283},
	{Code: "MHT", Name: "Manchester-Boston Regional", Latitude: 42.9326, Longitude: -71.4357},
	{Code: "HPN", Name: "Westchester County", Latitude: 41.0670, Longitude: -73.7076},
	{Code: "ISP", Name: "Long Island MacArthur", Latitude: 40.7952, Longitude: -73.1002},

	// International
	{Code: "YYZ", Name: "Toronto Pearson International", Latitude: 43.6777, Longitude: -79.6248},
	{Code: "YUL", Name: "Montreal-Trudeau International", Latitude: 45.4706, Longitude: -73.7408},
	{Code: "YVR", Name: "Vancouver International", Latitude: 49.1967, Longitude: -123.1815},
	{Code: "MEX", Name: "Mexico City International", Latitude: 19.4361, Longitude: -99.0719},
	{Code: "LHR", Name: "London Heathrow", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "LGW", Name: "London Gatwick", Latitude: 51.1537, Longitude: -0.1821},
	{Code: "STN", Name: "London Stansted", Latitude: 51.8860, Longitude: 0.2389},
	{Code: "LTN", Name: "London Luton", Latitude: 51.8747, Longitude: -0.3683},
	{Code: "CDG", Name: "Paris Charles de Gaulle", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "ORY", Name: "Paris Orly", Latitude: 48.7262, Longitude: 2.3652},
	{Code: "FRA", Name: "Frankfurt am Main", Latitude: 50.0379, Longitude: 8.5622},
	{Code: "MUC", Name: "Munich", Latitude: 48.3537, Longitude: 11.7750},
	{Code: "AMS", Name: "Amsterdam Schiphol", Latitude: 52.3105, Longitude: 4.7683},
	{Code: "ZRH", Name: "Zurich", Latitude: 47.4582, Longitude: 8.5555},
	{Code: "DUB", Name: "Dublin", Latitude: 53.4264, Longitude: -6.2499},
	{Code: "MAD", Name: "Adolfo Suarez Madrid-Barajas", Latitude: 40.4983, Longitude: -3.5676},
	{Code: "BCN", Name: "Barcelona-El Prat", Latitude: 41.2974, Longitude: 2.0833},
	{Code: "FCO", Name: "Rome Fiumicino", Latitude: 41.8003, Longitude: 12.2389},
	{Code: "DXB", Name: "Dubai International", Latitude: 25.2532, Longitude: 55.3657},
	{Code: "SIN", Name: "Singapore Changi", Latitude: 1.3644, Longitude: 103.9915},
	{Code: "HKG", Name: "Hong Kong International", Latitude: 22.3080, Longitude: 113.9185},
	{Code: "ICN", Name: "Seoul Incheon International", Latitude: 37.4602, Longitude: 126.4407},
	{Code: "NRT", Name: "Tokyo Narita International", Latitude: 35.7720, Longitude: 140.3929},
	{Code: "HND", Name: "Tokyo Haneda", Latitude: 35.5494, Longitude: 139.7798},
	{Code: "SYD", Name: "Sydney Kingsford Smith", Latitude: -33.9399, Longitude: 151.1753},
}
