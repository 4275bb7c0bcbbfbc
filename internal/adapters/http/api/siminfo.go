// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// simOperator describes one mobile operator entry.
type simOperator struct {
	Name    string `json:"name"`
	Notes   string `json:"notes"`
	Website string `json:"website"`
}

// simInfoResponse is the curated city/SIM-card informational payload.
type simInfoResponse struct {
	City         string        `json:"city"`
	Country      string        `json:"country"`
	Operators    []simOperator `json:"operators"`
	WhereToBuy   []string      `json:"where_to_buy"`
	Requirements []string      `json:"requirements"`
	Tips         []string      `json:"tips"`
	Disclaimer   string        `json:"disclaimer"`
}

// simInfo is static reference content for visitors buying a SIM card in
// Omsk; it changes only with redeploys.
var simInfo = simInfoResponse{
	City:    "Омск",
	Country: "Россия",
	Operators: []simOperator{
		{
			Name:    "МТС",
			Notes:   "Широкое покрытие по городу, выгодные пакеты интернета. Фирменные салоны в центре и ТРЦ.",
			Website: "https://omsk.mts.ru/",
		},
		{
			Name:    "Билайн",
			Notes:   "Стабильный 4G в центральных районах, гибкие тарифы.",
			Website: "https://omsk.beeline.ru/",
		},
		{
			Name:    "МегаФон",
			Notes:   "Хороший мобильный интернет, много точек продаж.",
			Website: "https://omsk.megafon.ru/",
		},
		{
			Name:    "Tele2",
			Notes:   "Доступные пакеты, часто выгодные акции для интернета.",
			Website: "https://omsk.tele2.ru/",
		},
	},
	WhereToBuy: []string{
		"Фирменные салоны операторов в центре (Любинский проспект, ул. Ленина, ТРЦ МЕГА, Континент).",
		"Официальные точки продаж в ТЦ/ТЦ у метро (если есть), а также киоски связи.",
		"В аэропорту Омск (OMS) выбор ограничен — лучше покупать в городе.",
	},
	Requirements: []string{
		"Паспорт РФ для граждан России.",
		"Для иностранцев: загранпаспорт, миграционная карта/регистрация. Оформление по закону обязательно.",
		"Оформление SIM занимает 5–10 минут, номер активируется сразу или в течение суток.",
	},
	Tips: []string{
		"Проверьте покрытие и действующие акции на сайтах операторов.",
		"Сохраните чек и договор — пригодится для поддержки.",
		"Пополнение: терминалы, банки, приложения операторов.",
	},
	Disclaimer: "Информация носит справочный характер. Уточняйте актуальные условия на сайтах операторов или в салонах.",
}

// SimInfoHandler serves the static SIM-card information payload.
type SimInfoHandler struct{}

// NewSimInfoHandler creates a new sim-info handler.
func NewSimInfoHandler() *SimInfoHandler {
	return &SimInfoHandler{}
}

// HandleGetSimInfo handles GET /api/sim-info requests.
func (h *SimInfoHandler) HandleGetSimInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, simInfo)
}
