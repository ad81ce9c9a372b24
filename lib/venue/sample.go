// Copyright 2026 The Venuedesk Authors
// SPDX-License-Identifier: Apache-2.0

package venue

// SampleCatalog returns the built-in mock catalog used when no
// --catalog file is given: eight venues around greater Paris, two of
// them without coordinates so the list/map split is exercised out of
// the box.
func SampleCatalog() *Catalog {
	venues := []Venue{
		{
			ID: 1, Name: "Rive Gauche Forum", Category: "conference",
			Region: "Paris 6e", Capacity: 320, PriceBand: "$$$",
			Availability: "open", Rating: 4.6,
			Summary:     "Tiered auditorium and six breakout rooms near Saint-Germain.",
			Coordinates: &Coordinates{Lon: 2.3341, Lat: 48.8529},
		},
		{
			ID: 2, Name: "Canal Loft Dixneuf", Category: "loft",
			Region: "Paris 19e", Capacity: 80, PriceBand: "$$",
			Availability: "limited", Rating: 4.4,
			Summary:     "Exposed-brick loft on the Canal de l'Ourcq, daylight all day.",
			Coordinates: &Coordinates{Lon: 2.3821, Lat: 48.8899},
		},
		{
			ID: 3, Name: "Domaine de Meudon", Category: "estate",
			Region: "Meudon", Capacity: 200, PriceBand: "$$$",
			Availability: "open", Rating: 4.8,
			Summary:     "Walled park estate twenty minutes from Montparnasse.",
			Coordinates: &Coordinates{Lon: 2.2350, Lat: 48.8079},
		},
		{
			ID: 4, Name: "Toit de Bercy", Category: "rooftop",
			Region: "Paris 12e", Capacity: 150, PriceBand: "$$",
			Availability: "open", Rating: 4.2,
			Summary:     "Planted rooftop over the Seine with a covered pavilion.",
			Coordinates: &Coordinates{Lon: 2.3833, Lat: 48.8352},
		},
		{
			ID: 5, Name: "Halle Pantin", Category: "conference",
			Region: "Pantin", Capacity: 500, PriceBand: "$$",
			Availability: "limited", Rating: 4.1,
			Summary:     "Converted rail hall for plenaries and expo floors.",
			Coordinates: &Coordinates{Lon: 2.4102, Lat: 48.8966},
		},
		{
			ID: 6, Name: "Atelier Voltaire", Category: "loft",
			Region: "Paris 11e", Capacity: 60, PriceBand: "$",
			Availability: "booked", Rating: 4.0,
			Summary:     "Compact workshop space for off-sites and design sprints.",
			Coordinates: &Coordinates{Lon: 2.3804, Lat: 48.8581},
		},
		{
			// Listed through a partner; no published address yet.
			ID: 7, Name: "Pavillon Particulier", Category: "estate",
			Region: "Versailles", Capacity: 120, PriceBand: "$$$",
			Availability: "open", Rating: 4.7,
			Summary: "Private pavilion with formal gardens, address on request.",
		},
		{
			ID: 8, Name: "La Serre Mobile", Category: "rooftop",
			Region: "Île-de-France", Capacity: 90, PriceBand: "$$",
			Availability: "limited", Rating: 3.9,
			Summary: "Relocatable glasshouse venue, sited per event.",
		},
	}

	details := []Details{
		{
			VenueID: 1,
			Description: "## Rive Gauche Forum\n\nA purpose-built conference floor " +
				"across two levels. The **auditorium** seats 320 in tiered rows; " +
				"six breakout rooms take 12–40 each.\n\n- Full AV in every room\n" +
				"- Simultaneous-interpretation booths\n- Catering kitchen on site",
			Amenities: []string{"AV", "interpretation booths", "catering kitchen", "cloakroom"},
			HostName:  "Claire Fontaine", HostContact: "claire@rivegauche.example",
			FloorArea: 1850,
		},
		{
			VenueID: 2,
			Description: "## Canal Loft Dixneuf\n\nOne open floor of exposed brick " +
				"and steel, *north light* until late afternoon. Furniture is " +
				"modular; the host reconfigures overnight at no charge.",
			Amenities: []string{"modular furniture", "projector", "freight elevator"},
			HostName:  "Karim Benali", HostContact: "karim@canalloft.example",
			FloorArea: 420,
		},
		{
			VenueID: 3,
			Description: "## Domaine de Meudon\n\nMain house, orangerie, and a " +
				"four-hectare walled park. Outdoor ceremonies move to the " +
				"orangerie in rain without a layout change.",
			Amenities: []string{"orangerie", "parking", "on-site lodging", "garden marquee"},
			HostName:  "Sophie Arnault", HostContact: "events@meudon.example",
			FloorArea: 1200,
		},
		{
			VenueID: 4,
			Description: "## Toit de Bercy\n\nPlanted rooftop with a covered " +
				"pavilion for 150 standing. Wind policy: the terrace closes " +
				"above 40 km/h gusts, pavilion stays open.",
			Amenities: []string{"pavilion", "bar", "heaters"},
			HostName:  "Louis Mercier", HostContact: "louis@toitbercy.example",
			FloorArea: 600,
		},
		{
			VenueID: 5,
			Description: "## Halle Pantin\n\nA 1920s rail hall with 14 m " +
				"clearance — build-outs welcome. Load-in by truck at floor " +
				"level on both ends.",
			Amenities: []string{"truck load-in", "rigging points", "3-phase power"},
			HostName:  "Pantin Events", HostContact: "bookings@hallepantin.example",
			FloorArea: 3200,
		},
		{
			VenueID: 6,
			Description: "## Atelier Voltaire\n\nWorkbenches, whiteboard walls, " +
				"and a small mezzanine for breakouts.",
			Amenities: []string{"whiteboard walls", "mezzanine"},
			HostName:  "Ana Duarte", HostContact: "ana@ateliervoltaire.example",
			FloorArea: 180,
		},
		{
			VenueID: 7,
			Description: "## Pavillon Particulier\n\nPrivate estate represented " +
				"by a partner agency; the address is shared after a signed " +
				"request. Gardens by Le Nôtre's studio, restored 2019.",
			Amenities: []string{"formal gardens", "valet", "security"},
			HostName:  "Agence Perrault", HostContact: "contact@perrault.example",
			FloorArea: 950,
		},
		{
			VenueID: 8,
			Description: "## La Serre Mobile\n\nA relocatable glasshouse erected " +
				"at your site of choice within Île-de-France. Siting survey " +
				"included in the quote.",
			Amenities: []string{"siting survey", "climate control"},
			HostName:  "Serre Mobile SAS", HostContact: "hello@serremobile.example",
			FloorArea: 300,
		},
	}

	return NewCatalog(venues, details)
}
