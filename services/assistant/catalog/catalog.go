// Copyright (C) 2025 Khemet Labs
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package catalog holds the fixed Egyptian artifacts catalogue and the
// pure query logic over it: the fuzzy matcher and the dataset resolver.
//
// The catalogue is an ordered, immutable dataset built at package load.
// Callers must treat the returned slice as read-only; it is shared across
// all requests without synchronization.
package catalog

import (
	"github.com/khemetlabs/khemet/services/assistant/datatypes"
)

// artifacts is the full catalogue in canonical order. Order matters: the
// matcher resolves score ties in favor of the earliest entry.
var artifacts = []datatypes.Artifact{
	{
		ID:              1,
		Name:            "Rosetta Stone",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1801,
		Description:     "The key that unlocked Egyptian hieroglyphs. Contains the same text in three scripts: hieroglyphic, demotic, and Greek. Captured from French forces by the British.",
		ArtifactType:    "Granodiorite Stone",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/rosetta_stone.jpg",
		Images:          []string{"/static/images/rosetta_1.jpg", "/static/images/rosetta_2.jpg"},
	},
	{
		ID:              2,
		Name:            "Bust of Nefertiti",
		Museum:          "Neues Museum",
		City:            "Berlin",
		Country:         "Germany",
		Latitude:        52.52,
		Longitude:       13.3967,
		Status:          datatypes.StatusContested,
		YearTaken:       1912,
		Description:     "Iconic limestone bust of Queen Nefertiti, renowned for its beauty and preservation. Acquired by German archaeologist Ludwig Borchardt under disputed circumstances.",
		ArtifactType:    "Limestone Bust",
		CurrentLocation: "Neues Museum, Berlin",
		ImageURL:        "/static/images/nefertiti_bust.jpg",
		Images:          []string{"/static/images/nefertiti_1.jpg", "/static/images/nefertiti_2.jpg"},
	},
	{
		ID:              3,
		Name:            "Dendera Zodiac",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1820,
		Description:     "Celestial bas-relief from the Temple of Hathor ceiling. Removed by French archaeologist Sébastien Louis Saulnier using saws and explosives.",
		ArtifactType:    "Sandstone Relief",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/dendera_zodiac.jpg",
		Images:          []string{"/static/images/dendera_1.jpg", "/static/images/dendera_2.jpg"},
	},
	{
		ID:              4,
		Name:            "Colossal Statue of Ramesses II",
		Museum:          "Ramesseum",
		City:            "Luxor",
		Country:         "Egypt",
		Latitude:        25.728,
		Longitude:       32.61,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       0,
		Description:     "7.5-ton granite statue of Pharaoh Ramesses II from the Ramesseum temple. The main colossus remains in situ at the Ramesseum.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Ramesseum, Luxor, Egypt",
		ImageURL:        "/static/images/ramesses_british.jpg",
		Images:          []string{"/static/images/ramesses_1.jpg"},
	},
	{
		ID:              5,
		Name:            "Sarcophagus of Seti I",
		Museum:          "Sir John Soane's Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5175,
		Longitude:       -0.1167,
		Status:          datatypes.StatusContested,
		YearTaken:       1821,
		Description:     "Magnificent alabaster sarcophagus of Pharaoh Seti I, father of Ramesses II. Acquired by Giovanni Belzoni from the Valley of the Kings.",
		ArtifactType:    "Alabaster Sarcophagus",
		CurrentLocation: "Sir John Soane's Museum, London",
		ImageURL:        "/static/images/seti_sarcophagus.jpg",
		Images:          []string{"/static/images/seti_1.jpg"},
	},
	{
		ID:              6,
		Name:            "Statue of Hemiunu",
		Museum:          "Roemer und Pelizaeus Museum",
		City:            "Hildesheim",
		Country:         "Germany",
		Latitude:        52.15,
		Longitude:       9.95,
		Status:          datatypes.StatusContested,
		YearTaken:       1912,
		Description:     "Life-sized limestone statue of Hemiunu, nephew of Pharaoh Khufu and probable architect of the Great Pyramid. Found in his mastaba tomb at Giza.",
		ArtifactType:    "Limestone Statue",
		CurrentLocation: "Roemer und Pelizaeus Museum, Hildesheim",
		ImageURL:        "/static/images/hemiunu.jpg",
		Images:          []string{"/static/images/hemiunu_1.jpg"},
	},
	{
		ID:              7,
		Name:            "Green Head of Osiris",
		Museum:          "Egyptian Museum of Berlin",
		City:            "Berlin",
		Country:         "Germany",
		Latitude:        52.52,
		Longitude:       13.3967,
		Status:          datatypes.StatusContested,
		YearTaken:       1911,
		Description:     "Exquisite basalt head of Osiris from the Late Period. Considered one of the finest examples of Egyptian sculpture in existence.",
		ArtifactType:    "Basalt Sculpture",
		CurrentLocation: "Egyptian Museum of Berlin",
		ImageURL:        "/static/images/green_head.jpg",
		Images:          []string{"/static/images/green_head_1.jpg"},
	},
	{
		ID:              8,
		Name:            "Statue of Ka-Aper",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1860,
		Description:     "Wooden statue of a priest from the 5th Dynasty. Known as \"Sheikh el-Balad\" (Village Chief) due to its lifelike appearance. Found at Saqqara.",
		ArtifactType:    "Wooden Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/ka_aper.jpg",
		Images:          []string{"/static/images/ka_aper_1.jpg"},
	},
	{
		ID:              9,
		Name:            "Sphinx of Hatshepsut",
		Museum:          "Metropolitan Museum of Art",
		City:            "New York",
		Country:         "USA",
		Latitude:        40.7794,
		Longitude:       -73.9631,
		Status:          datatypes.StatusContested,
		YearTaken:       1930,
		Description:     "Granite sphinx bearing the features of Pharaoh Hatshepsut. One of several sphinxes from her temple at Deir el-Bahri.",
		ArtifactType:    "Granite Sphinx",
		CurrentLocation: "Metropolitan Museum of Art, New York",
		ImageURL:        "/static/images/hatshepsut_sphinx.jpg",
		Images:          []string{"/static/images/hatshepsut_1.jpg"},
	},
	{
		ID:              10,
		Name:            "Narmer Palette",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1898,
		Description:     "Ceremonial palette commemorating the unification of Upper and Lower Egypt under King Narmer. One of the earliest historical documents from ancient Egypt.",
		ArtifactType:    "Slate Palette",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/narmer_palette.jpg",
		Images:          []string{"/static/images/narmer_1.jpg"},
	},
	{
		ID:              11,
		Name:            "Bust of Ankhhaf",
		Museum:          "Museum of Fine Arts",
		City:            "Boston",
		Country:         "USA",
		Latitude:        42.3393,
		Longitude:       -71.094,
		Status:          datatypes.StatusContested,
		YearTaken:       1925,
		Description:     "Limestone bust of Prince Ankhhaf, son of Pharaoh Sneferu. Considered one of the masterpieces of Old Kingdom portraiture.",
		ArtifactType:    "Limestone Bust",
		CurrentLocation: "Museum of Fine Arts, Boston",
		ImageURL:        "/static/images/ankhhaf.jpg",
		Images:          []string{"/static/images/ankhhaf_1.jpg"},
	},
	{
		ID:              12,
		Name:            "Statue of Khafre",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1860,
		Description:     "Diorite statue of Pharaoh Khafre, builder of the second pyramid at Giza. Found in his valley temple by Auguste Mariette.",
		ArtifactType:    "Diorite Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/khafre.jpg",
		Images:          []string{"/static/images/khafre_1.jpg"},
	},
	{
		ID:              13,
		Name:            "Seated Statue of Hatshepsut",
		Museum:          "Metropolitan Museum of Art",
		City:            "New York",
		Country:         "USA",
		Latitude:        40.7794,
		Longitude:       -73.9631,
		Status:          datatypes.StatusContested,
		YearTaken:       1930,
		Description:     "Large seated statue of Pharaoh Hatshepsut in traditional royal regalia. From her mortuary temple at Deir el-Bahri.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Metropolitan Museum of Art, New York",
		ImageURL:        "/static/images/hatshepsut_seated.jpg",
		Images:          []string{"/static/images/hatshepsut_2.jpg"},
	},
	{
		ID:              14,
		Name:            "Mummy Mask of Satdjehuty",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1827,
		Description:     "Gilded cartonnage mummy mask of Queen Satdjehuty, daughter of Pharaoh Seqenenre Tao. From her tomb at Thebes.",
		ArtifactType:    "Gilded Mask",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/satdjehuty_mask.jpg",
		Images:          []string{"/static/images/satdjehuty_1.jpg"},
	},
	{
		ID:              15,
		Name:            "Statue of Amenhotep III and Tiye",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1889,
		Description:     "Colossal statue depicting Pharaoh Amenhotep III with his wife Queen Tiye. From the temple at Medinet Habu.",
		ArtifactType:    "Quartzite Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/amenhotep_tiye.jpg",
		Images:          []string{"/static/images/amenhotep_1.jpg"},
	},
	{
		ID:              16,
		Name:            "Bust of Akhenaten",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1922,
		Description:     "Sandstone bust of the \"heretic pharaoh\" Akhenaten, showing the distinctive Amarna artistic style. From Karnak temple.",
		ArtifactType:    "Sandstone Bust",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/akhenaten_bust.jpg",
		Images:          []string{"/static/images/akhenaten_1.jpg"},
	},
	{
		ID:              17,
		Name:            "Golden Throne of Tutankhamun",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1922,
		Description:     "Exquisitely crafted golden throne found in Tutankhamun's tomb. Features the young king with his wife Ankhesenamun.",
		ArtifactType:    "Golden Throne",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/tut_throne.jpg",
		Images:          []string{"/static/images/tut_throne_1.jpg"},
	},
	{
		ID:              18,
		Name:            "Rosicrucian Egyptian Museum Collection",
		Museum:          "Rosicrucian Egyptian Museum",
		City:            "San Jose",
		Country:         "USA",
		Latitude:        37.3329,
		Longitude:       -121.9046,
		Status:          datatypes.StatusContested,
		YearTaken:       1930,
		Description:     "Large collection of Egyptian artifacts including mummies, sarcophagi, and funerary objects acquired through various expeditions.",
		ArtifactType:    "Museum Collection",
		CurrentLocation: "Rosicrucian Egyptian Museum, San Jose",
		ImageURL:        "/static/images/rosicrucian.jpg",
		Images:          []string{"/static/images/rosicrucian_1.jpg"},
	},
	{
		ID:              19,
		Name:            "Statue of Senusret III",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1838,
		Description:     "Granite statue of the powerful Middle Kingdom pharaoh Senusret III, known for his military campaigns and administrative reforms.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/senusret_iii.jpg",
		Images:          []string{"/static/images/senusret_1.jpg"},
	},
	{
		ID:              20,
		Name:            "Sarcophagus of Nedjemankh",
		Museum:          "Returned to Egypt",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusReturned,
		YearTaken:       2011,
		Description:     "Gilded silver coffin of a high priest. Looted after the 2011 revolution and returned by the Metropolitan Museum in 2019 after investigation.",
		ArtifactType:    "Gilded Coffin",
		CurrentLocation: "Grand Egyptian Museum, Cairo",
		ImageURL:        "/static/images/nedjemankh.jpg",
		Images:          []string{"/static/images/nedjemankh_1.jpg"},
	},
	{
		ID:              21,
		Name:            "Statue of Mentuhotep II",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1898,
		Description:     "Sandstone statue of Pharaoh Mentuhotep II, the ruler who reunified Egypt and began the Middle Kingdom. From his mortuary temple at Deir el-Bahri.",
		ArtifactType:    "Sandstone Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/mentuhotep.jpg",
		Images:          []string{"/static/images/mentuhotep_1.jpg"},
	},
	{
		ID:              22,
		Name:            "Bust of Cleopatra VII",
		Museum:          "Altes Museum",
		City:            "Berlin",
		Country:         "Germany",
		Latitude:        52.52,
		Longitude:       13.3967,
		Status:          datatypes.StatusContested,
		YearTaken:       1840,
		Description:     "Marble bust believed to depict Cleopatra VII, the last active ruler of the Ptolemaic Kingdom of Egypt.",
		ArtifactType:    "Marble Bust",
		CurrentLocation: "Altes Museum, Berlin",
		ImageURL:        "/static/images/cleopatra_bust.jpg",
		Images:          []string{"/static/images/cleopatra_1.jpg"},
	},
	{
		ID:              23,
		Name:            "Canopic Jar of Tutankhamun",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1922,
		Description:     "One of four alabaster canopic jars that contained the internal organs of King Tutankhamun. Each jar protected by a goddess.",
		ArtifactType:    "Alabaster Jar",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/tut_canopic.jpg",
		Images:          []string{"/static/images/tut_canopic_1.jpg"},
	},
	{
		ID:              24,
		Name:            "Statue of Ptah",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1826,
		Description:     "Bronze statue of the creator god Ptah, patron deity of craftsmen and architects. From the temple at Memphis.",
		ArtifactType:    "Bronze Statue",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/ptah_statue.jpg",
		Images:          []string{"/static/images/ptah_1.jpg"},
	},
	{
		ID:              25,
		Name:            "Mummy Mask of Wendjebauendjed",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1940,
		Description:     "Silver and gold mummy mask of General Wendjebauendjed from the 21st Dynasty. One of the few silver masks from ancient Egypt.",
		ArtifactType:    "Silver Mask",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/wendjebauendjed.jpg",
		Images:          []string{"/static/images/wendjebauendjed_1.jpg"},
	},
	{
		ID:              26,
		Name:            "Statue of Sekhmet",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1818,
		Description:     "Granite statue of the lion-headed goddess Sekhmet from the temple of Mut at Karnak. One of hundreds commissioned by Amenhotep III.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/sekhmet.jpg",
		Images:          []string{"/static/images/sekhmet_1.jpg"},
	},
	{
		ID:              27,
		Name:            "Fayum Mummy Portraits",
		Museum:          "Various Museums Worldwide",
		City:            "Multiple Cities",
		Country:         "Multiple Countries",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1880,
		Description:     "Collection of realistic portraits attached to mummies from Roman Egypt. Scattered across museums in Europe and America.",
		ArtifactType:    "Mummy Portraits",
		CurrentLocation: "Various International Museums",
		ImageURL:        "/static/images/fayum_portraits.jpg",
		Images:          []string{"/static/images/fayum_1.jpg"},
	},
	{
		ID:              28,
		Name:            "Statue of Ankhwa",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1890,
		Description:     "One of the earliest metal statues from ancient Egypt, depicting the shipbuilder Ankhwa from the 3rd Dynasty.",
		ArtifactType:    "Bronze Statue",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/ankhwa.jpg",
		Images:          []string{"/static/images/ankhwa_1.jpg"},
	},
	{
		ID:              29,
		Name:            "Kalabsha Gate",
		Museum:          "Egyptian Museum of Berlin",
		City:            "Berlin",
		Country:         "Germany",
		Latitude:        52.52,
		Longitude:       13.3967,
		Status:          datatypes.StatusContested,
		YearTaken:       1812,
		Description:     "Large Roman-era gate from Kalabsha Temple in Nubia. Saved from flooding and relocated to Germany.",
		ArtifactType:    "Stone Gate",
		CurrentLocation: "Egyptian Museum, Berlin",
		ImageURL:        "/static/images/kalabsha_gate.jpg",
		Images:          []string{"/static/images/kalabsha_1.jpg"},
	},
	{
		ID:              30,
		Name:            "Statue of Merneptah",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1896,
		Description:     "Granite statue of Pharaoh Merneptah, son of Ramesses II. Known for his victory stele that contains the first known reference to Israel.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/merneptah.jpg",
		Images:          []string{"/static/images/merneptah_1.jpg"},
	},
	{
		ID:              31,
		Name:            "Coffin of Hor",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1824,
		Description:     "Painted wooden coffin of the priest Hor from the Late Period. Notable for its vivid colors and detailed hieroglyphs.",
		ArtifactType:    "Wooden Coffin",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/hor_coffin.jpg",
		Images:          []string{"/static/images/hor_1.jpg"},
	},
	{
		ID:              32,
		Name:            "Statue of Niankhkhnum and Khnumhotep",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1964,
		Description:     "Unique double statue of two royal manicurists shown embracing. Their close relationship has been subject of much scholarly discussion.",
		ArtifactType:    "Limestone Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/niankhkhnum.jpg",
		Images:          []string{"/static/images/niankhkhnum_1.jpg"},
	},
	{
		ID:              33,
		Name:            "Sphinx of Taharqa",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1932,
		Description:     "Granite sphinx with the features of Pharaoh Taharqa, the Nubian ruler of the 25th Dynasty who controlled both Egypt and Kush.",
		ArtifactType:    "Granite Sphinx",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/taharqa_sphinx.jpg",
		Images:          []string{"/static/images/taharqa_1.jpg"},
	},
	{
		ID:              34,
		Name:            "Statue of Khentkawes I",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1932,
		Description:     "Diorite statue of Queen Khentkawes I, who may have ruled Egypt at the end of the 4th Dynasty. From her tomb at Giza.",
		ArtifactType:    "Diorite Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/khentkawes.jpg",
		Images:          []string{"/static/images/khentkawes_1.jpg"},
	},
	{
		ID:              35,
		Name:            "Bust of Ramesses II",
		Museum:          "Museo Egizio",
		City:            "Turin",
		Country:         "Italy",
		Latitude:        45.0684,
		Longitude:       7.6843,
		Status:          datatypes.StatusContested,
		YearTaken:       1824,
		Description:     "Granite bust of the great pharaoh Ramesses II, part of the extensive Drovetti collection acquired in the early 19th century.",
		ArtifactType:    "Granite Bust",
		CurrentLocation: "Museo Egizio, Turin",
		ImageURL:        "/static/images/ramesses_turin.jpg",
		Images:          []string{"/static/images/ramesses_2.jpg"},
	},
	{
		ID:              36,
		Name:            "Mummy of Ramesses I",
		Museum:          "Luxor Museum",
		City:            "Luxor",
		Country:         "Egypt",
		Latitude:        25.6872,
		Longitude:       32.6396,
		Status:          datatypes.StatusReturned,
		YearTaken:       1861,
		Description:     "Mummy of the founder of the 19th Dynasty. Was in the Niagara Falls Museum until identified and returned to Egypt in 2003.",
		ArtifactType:    "Royal Mummy",
		CurrentLocation: "Luxor Museum, Egypt",
		ImageURL:        "/static/images/ramesses_i.jpg",
		Images:          []string{"/static/images/ramesses_i_1.jpg"},
	},
	{
		ID:              37,
		Name:            "Statue of Sobek",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1823,
		Description:     "Granite statue of the crocodile god Sobek, worshipped particularly in the Faiyum region. From the temple at Kom Ombo.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/sobek.jpg",
		Images:          []string{"/static/images/sobek_1.jpg"},
	},
	{
		ID:              38,
		Name:            "Golden Mask of Psusennes I",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1940,
		Description:     "Solid gold funeral mask of Pharaoh Psusennes I, discovered in his intact tomb at Tanis. Often compared to Tutankhamun's mask.",
		ArtifactType:    "Golden Mask",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/psusennes_mask.jpg",
		Images:          []string{"/static/images/psusennes_1.jpg"},
	},
	{
		ID:              39,
		Name:            "Statue of Djoser",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1924,
		Description:     "Life-sized seated statue of Pharaoh Djoser, builder of the Step Pyramid at Saqqara. Found in the serdab of his pyramid complex.",
		ArtifactType:    "Limestone Statue",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/djoser.jpg",
		Images:          []string{"/static/images/djoser_1.jpg"},
	},
	{
		ID:              40,
		Name:            "Sarcophagus of Alexander the Great",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1801,
		Description:     "Elaborate sarcophagus believed made for Alexander the Great but used for Pharaoh Nectanebo II. From the cemetery at Sidon.",
		ArtifactType:    "Marble Sarcophagus",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/alexander_sarcophagus.jpg",
		Images:          []string{"/static/images/alexander_1.jpg"},
	},
	{
		ID:              41,
		Name:            "Statue of Thutmose III",
		Museum:          "Kunsthistorisches Museum",
		City:            "Vienna",
		Country:         "Austria",
		Latitude:        48.2039,
		Longitude:       16.3617,
		Status:          datatypes.StatusContested,
		YearTaken:       1912,
		Description:     "Granite statue of the \"Napoleon of Egypt,\" Thutmose III, known for his military campaigns that expanded the Egyptian empire.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Kunsthistorisches Museum, Vienna",
		ImageURL:        "/static/images/thutmose_iii.jpg",
		Images:          []string{"/static/images/thutmose_1.jpg"},
	},
	{
		ID:              42,
		Name:            "Mastaba of Ka-ni-Nisut",
		Museum:          "Kunsthistorisches Museum",
		City:            "Vienna",
		Country:         "Austria",
		Latitude:        48.2039,
		Longitude:       16.3617,
		Status:          datatypes.StatusContested,
		YearTaken:       1912,
		Description:     "Complete tomb chapel from the Old Kingdom period with detailed reliefs showing daily life and offering scenes.",
		ArtifactType:    "Tomb Chapel",
		CurrentLocation: "Kunsthistorisches Museum, Vienna",
		ImageURL:        "/static/images/ka_ni_nisut.jpg",
		Images:          []string{"/static/images/mastaba_1.jpg"},
	},
	{
		ID:              43,
		Name:            "Statue of Meritamen",
		Museum:          "Museo Egizio",
		City:            "Turin",
		Country:         "Italy",
		Latitude:        45.0684,
		Longitude:       7.6843,
		Status:          datatypes.StatusContested,
		YearTaken:       1824,
		Description:     "Granite statue of Princess Meritamen, daughter of Ramesses II and Nefertari. Shows her in the role of a chantress of Amun.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "Museo Egizio, Turin",
		ImageURL:        "/static/images/meritamen.jpg",
		Images:          []string{"/static/images/meritamen_1.jpg"},
	},
	{
		ID:              44,
		Name:            "Sphinx of Amenemhat III",
		Museum:          "Louvre Museum",
		City:            "Paris",
		Country:         "France",
		Latitude:        48.8606,
		Longitude:       2.3376,
		Status:          datatypes.StatusContested,
		YearTaken:       1823,
		Description:     "Granite sphinx with the features of Pharaoh Amenemhat III, known for his extensive building projects including the Labyrinth.",
		ArtifactType:    "Granite Sphinx",
		CurrentLocation: "Louvre Museum, Paris",
		ImageURL:        "/static/images/amenemhat_sphinx.jpg",
		Images:          []string{"/static/images/amenemhat_1.jpg"},
	},
	{
		ID:              45,
		Name:            "Statue of Intef II",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1835,
		Description:     "Sandstone statue of Pharaoh Intef II, a ruler of the 11th Dynasty who fought to reunify Egypt during the First Intermediate Period.",
		ArtifactType:    "Sandstone Statue",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/intef_ii.jpg",
		Images:          []string{"/static/images/intef_1.jpg"},
	},
	{
		ID:              46,
		Name:            "Coffin of Ipi",
		Museum:          "Egyptian Museum of Cairo",
		City:            "Cairo",
		Country:         "Egypt",
		Latitude:        30.0478,
		Longitude:       31.2333,
		Status:          datatypes.StatusInEgypt,
		YearTaken:       1915,
		Description:     "Elaborate Middle Kingdom coffin of the steward Ipi, decorated with Coffin Texts and offering formulas to ensure his afterlife.",
		ArtifactType:    "Wooden Coffin",
		CurrentLocation: "Egyptian Museum, Cairo",
		ImageURL:        "/static/images/ipi_coffin.jpg",
		Images:          []string{"/static/images/ipi_1.jpg"},
	},
	{
		ID:              47,
		Name:            "Statue of Senenmut with Neferure",
		Museum:          "British Museum",
		City:            "London",
		Country:         "United Kingdom",
		Latitude:        51.5194,
		Longitude:       -0.127,
		Status:          datatypes.StatusContested,
		YearTaken:       1837,
		Description:     "Statue showing Senenmut, architect and royal advisor to Hatshepsut, holding Princess Neferure in a protective embrace.",
		ArtifactType:    "Granite Statue",
		CurrentLocation: "British Museum, London",
		ImageURL:        "/static/images/senenmut.jpg",
		Images:          []string{"/static/images/senenmut_1.jpg"},
	},
}

// Default returns the catalogue. The slice is shared and must not be
// mutated by callers.
func Default() []datatypes.Artifact {
	return artifacts
}
