// Package geodata holds the static administrative hierarchy used by the
// cascading location picker. The data is compile-time fixed: provinces and
// their subdivisions act as a closed enumeration of valid label segments.
package geodata

import (
	"github.com/cacupatiago-web/frotaapp-sub000/internal/domain/entity"
)

// Provinces returns the administrative hierarchy. The hierarchy is copied
// down to the neighborhood level per call so callers can never mutate the
// canonical data.
func Provinces() []entity.Province {
	provinces := make([]entity.Province, len(angola))
	for i, province := range angola {
		munis := make([]entity.Municipality, len(province.Municipalities))
		for j, muni := range province.Municipalities {
			hoods := make([]entity.Neighborhood, len(muni.Neighborhoods))
			copy(hoods, muni.Neighborhoods)
			munis[j] = entity.Municipality{Name: muni.Name, Neighborhoods: hoods}
		}
		provinces[i] = entity.Province{Name: province.Name, Municipalities: munis}
	}

	return provinces
}

func municipalities(names ...string) []entity.Municipality {
	out := make([]entity.Municipality, 0, len(names))
	for _, name := range names {
		out = append(out, entity.Municipality{Name: name})
	}

	return out
}

func neighborhoods(names ...string) []entity.Neighborhood {
	out := make([]entity.Neighborhood, 0, len(names))
	for _, name := range names {
		out = append(out, entity.Neighborhood{Name: name})
	}

	return out
}

var angola = []entity.Province{
	{
		Name: "Luanda",
		Municipalities: []entity.Municipality{
			{
				Name: "Belas",
				Neighborhoods: neighborhoods(
					"Benfica", "Camama", "Futungo de Belas", "Mussulo", "Ramiros", "Vila Verde",
				),
			},
			{
				Name: "Cacuaco",
				Neighborhoods: neighborhoods(
					"Cacuaco Sede", "Funda", "Kikolo", "Sequele",
				),
			},
			{
				Name: "Cazenga",
				Neighborhoods: neighborhoods(
					"Cazenga Popular", "Hoji-ya-Henda", "Tala Hady",
				),
			},
			{
				Name: "Icolo e Bengo",
				Neighborhoods: neighborhoods(
					"Bom Jesus", "Cabiri", "Catete",
				),
			},
			{
				Name: "Kilamba Kiaxi",
				Neighborhoods: neighborhoods(
					"Golfe", "Nova Vida", "Palanca", "Sapú",
				),
			},
			{
				Name: "Luanda",
				Neighborhoods: neighborhoods(
					"Ingombota", "Maianga", "Rangel", "Samba", "Sambizanga",
				),
			},
			{
				Name: "Quiçama",
				Neighborhoods: neighborhoods(
					"Muxima", "Demba Chio",
				),
			},
			{
				Name: "Talatona",
				Neighborhoods: neighborhoods(
					"Benfica Sul", "Cidade Universitária", "Lar do Patriota", "Talatona Sede",
				),
			},
			{
				Name: "Viana",
				Neighborhoods: neighborhoods(
					"Estalagem", "Luanda Sul", "Vila de Viana",
					"Zango 1", "Zango 2", "Zango 3", "Zango 4",
				),
			},
		},
	},
	{
		Name: "Bengo",
		Municipalities: []entity.Municipality{
			{Name: "Ambriz"},
			{Name: "Dande", Neighborhoods: neighborhoods("Caxito", "Barra do Dande")},
			{Name: "Nambuangongo"},
		},
	},
	{
		Name: "Benguela",
		Municipalities: []entity.Municipality{
			{Name: "Baía Farta"},
			{Name: "Benguela", Neighborhoods: neighborhoods("Praia Morena", "Calombotão")},
			{Name: "Catumbela"},
			{Name: "Lobito", Neighborhoods: neighborhoods("Restinga", "Canata", "Compão")},
		},
	},
	{
		Name:           "Bié",
		Municipalities: municipalities("Andulo", "Camacupa", "Cuíto", "Chinguar"),
	},
	{
		Name:           "Cabinda",
		Municipalities: municipalities("Belize", "Buco-Zau", "Cabinda", "Cacongo"),
	},
	{
		Name:           "Cuando Cubango",
		Municipalities: municipalities("Cuito Cuanavale", "Menongue", "Mavinga"),
	},
	{
		Name:           "Cuanza Norte",
		Municipalities: municipalities("Cambambe", "Cazengo", "Golungo Alto"),
	},
	{
		Name:           "Cuanza Sul",
		Municipalities: municipalities("Amboim", "Porto Amboim", "Sumbe", "Waku-Kungo"),
	},
	{
		Name:           "Cunene",
		Municipalities: municipalities("Cahama", "Cuanhama", "Ombadja"),
	},
	{
		Name: "Huambo",
		Municipalities: []entity.Municipality{
			{Name: "Bailundo"},
			{Name: "Caála"},
			{Name: "Huambo", Neighborhoods: neighborhoods("Cidade Alta", "São João")},
		},
	},
	{
		Name: "Huíla",
		Municipalities: []entity.Municipality{
			{Name: "Caconda"},
			{Name: "Chibia"},
			{Name: "Lubango", Neighborhoods: neighborhoods("Comercial", "Nambambe", "Tchioco")},
			{Name: "Matala"},
		},
	},
	{
		Name:           "Lunda Norte",
		Municipalities: municipalities("Cambulo", "Chitato", "Dundo", "Lucapa"),
	},
	{
		Name:           "Lunda Sul",
		Municipalities: municipalities("Cacolo", "Dala", "Muconda", "Saurimo"),
	},
	{
		Name:           "Malanje",
		Municipalities: municipalities("Cacuso", "Calandula", "Cangandala", "Malanje"),
	},
	{
		Name:           "Moxico",
		Municipalities: municipalities("Camanongue", "Luau", "Luena"),
	},
	{
		Name: "Namibe",
		Municipalities: []entity.Municipality{
			{Name: "Moçâmedes", Neighborhoods: neighborhoods("Praia Amélia", "Torre do Tombo")},
			{Name: "Tômbwa"},
		},
	},
	{
		Name:           "Uíge",
		Municipalities: municipalities("Maquela do Zombo", "Negage", "Uíge"),
	},
	{
		Name:           "Zaire",
		Municipalities: municipalities("M'Banza Kongo", "N'Zeto", "Soyo"),
	},
}
