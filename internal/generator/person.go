package generator

import (
	"fmt"

	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/random"
	"github.com/shenikar/sar_coordination_system/internal/refdata"
)

// location - совместная выборка (регион, губернаторство, город) с опорной координатой
type location struct {
	Region      string
	Governorate string
	City        string
	Anchor      models.GeoCoordinate
}

// anchoredLocations разворачивает иерархию регион -> губернаторство -> город,
// отбрасывая города без координатной привязки. Каждый инцидент обязан
// разрешаться в реальную опорную точку.
func anchoredLocations() []location {
	var locs []location
	for _, region := range refdata.Regions {
		for _, gov := range region.Governorates {
			for _, city := range gov.Cities {
				anchor, ok := refdata.CityAnchors[city]
				if !ok {
					continue
				}
				locs = append(locs, location{
					Region:      region.Name,
					Governorate: gov.Name,
					City:        city,
					Anchor:      anchor,
				})
			}
		}
	}
	return locs
}

// person - демографически согласованный профиль пропавшего.
// Поля заполняются строго по порядку шагов синтеза: поздние шаги
// читают значения ранних.
type person struct {
	Gender        models.Gender
	Name          string
	Age           int
	Loc           location
	Coords        models.GeoCoordinate
	Terrain       string
	Weather       string
	Diseases      []string
	RiskLevel     models.RiskLevel
	SurvivalHours int
	RiskScore     int
}

// synthesizePerson выполняет шаги синтеза профиля. Порядок шагов менять
// нельзя: оценка выживания читает возраст/местность/погоду, риск-балл
// читает оценку выживания.
func (g *Generator) synthesizePerson(locs []location, dedup *dedupState) (person, error) {
	var p person

	// 1. Пол: 35% мужчины / 65% женщины (зафиксированная константа конфигурации)
	if random.Chance(g.src, maleRatio) {
		p.Gender = models.GenderMale
	} else {
		p.Gender = models.GenderFemale
	}

	// 2. Имя из пула соответствующего пола, уникальность best-effort
	name, err := g.drawName(p.Gender, dedup)
	if err != nil {
		return person{}, err
	}
	p.Name = name

	// 3. Возраст
	p.Age, err = random.IntRange(g.src, minAge, maxAge)
	if err != nil {
		return person{}, err
	}

	// 4. Локация из сглаженной иерархии
	p.Loc, err = random.Choice(g.src, locs)
	if err != nil {
		return person{}, err
	}

	// 5. Координаты последнего обнаружения: опорная точка города плюс джиттер
	p.Coords = g.drawCoords(p.Loc.Anchor, dedup)

	// 6. Местность
	p.Terrain, err = random.Choice(g.src, refdata.Terrains)
	if err != nil {
		return person{}, err
	}

	// 7. Погода из совместимого с местностью подмножества
	weathers, ok := refdata.TerrainWeather[p.Terrain]
	if !ok {
		weathers = refdata.WeatherContexts
	}
	p.Weather, err = random.Choice(g.src, weathers)
	if err != nil {
		return person{}, err
	}

	// 8. Хронические заболевания с возрастным фильтром
	disease, err := random.Choice(g.src, refdata.Diseases)
	if err != nil {
		return person{}, err
	}
	if p.Age < minorAge && refdata.MinorDisqualifiedDiseases[disease] {
		disease = refdata.DiseaseNone
	}
	p.Diseases = []string{disease}

	// 9. Категориальный уровень риска - чистая функция от списка заболеваний
	p.RiskLevel = healthRiskLevel(p.Diseases)

	// 10. Оценка оставшихся часов выживания
	p.SurvivalHours = survivalEstimate(p.Age, p.Terrain, p.Weather, p.RiskLevel)

	// 11. Числовой риск-балл. Эскалация уровня риска при балле >= 85
	// выполняется позже, в сборщике, после финализации балла.
	p.RiskScore = riskScore(p.SurvivalHours, p.Weather, p.RiskLevel)

	return p, nil
}

// drawName составляет имя вида "имя + имя отца". До 50 попыток против
// множества уже использованных имен; после - дубликат принимается без
// ошибки, уникальность только best-effort.
func (g *Generator) drawName(gender models.Gender, dedup *dedupState) (string, error) {
	pool := refdata.MaleFirstNames
	if gender == models.GenderFemale {
		pool = refdata.FemaleFirstNames
	}

	var name string
	for attempt := 0; attempt < dedupRetries; attempt++ {
		first, err := random.Choice(g.src, pool)
		if err != nil {
			return "", err
		}
		father, err := random.Choice(g.src, refdata.FatherNames)
		if err != nil {
			return "", err
		}
		name = first + " " + father
		if !dedup.Names[name] {
			break
		}
	}
	dedup.Names[name] = true
	return name, nil
}

// drawCoords кладет точку последнего обнаружения в квадрат джиттера вокруг
// опорной координаты города. Ключ дедупликации округляется до 4 знаков;
// после 50 попыток совпадение принимается.
func (g *Generator) drawCoords(anchor models.GeoCoordinate, dedup *dedupState) models.GeoCoordinate {
	var coords models.GeoCoordinate
	var key string
	for attempt := 0; attempt < dedupRetries; attempt++ {
		coords = models.GeoCoordinate{
			Lat: anchor.Lat + random.Float(g.src, -coordJitter, coordJitter),
			Lng: anchor.Lng + random.Float(g.src, -coordJitter, coordJitter),
		}
		key = fmt.Sprintf("%.4f,%.4f", coords.Lat, coords.Lng)
		if !dedup.Coords[key] {
			break
		}
	}
	dedup.Coords[key] = true
	return coords
}

// healthRiskLevel - чистая функция от списка заболеваний
func healthRiskLevel(diseases []string) models.RiskLevel {
	hasReal := false
	for _, d := range diseases {
		if refdata.HighRiskDiseases[d] {
			return models.RiskHigh
		}
		if d != refdata.DiseaseNone {
			hasReal = true
		}
	}
	if hasReal {
		return models.RiskMedium
	}
	return models.RiskLow
}

// survivalEstimate считает оценку оставшихся часов: база по возрастной
// группе минус штрафы за неблагоприятные сочетания местности и погоды,
// с нижней границей 6 часов.
func survivalEstimate(age int, terrain, weather string, risk models.RiskLevel) int {
	hours := survivalBaseHours
	switch {
	case age < minorAge:
		hours = survivalMinorHours
	case age >= elderlyAge:
		hours = survivalElderlyHours
	}

	if penalties, ok := refdata.SurvivalPenaltyHours[terrain]; ok {
		hours -= penalties[weather]
	}

	if risk == models.RiskCritical {
		hours -= criticalHealthPenaltyHours
	}

	if hours < survivalFloorHours {
		hours = survivalFloorHours
	}
	return hours
}

// riskScore считает числовой риск-балл из оценки выживания с надбавками
// за неблагоприятную погоду и высокий медицинский риск, с потолком 99
func riskScore(survivalHours int, weather string, risk models.RiskLevel) int {
	score := 100 - survivalHours
	if refdata.AdverseWeather[weather] {
		score += adverseWeatherBonus
	}
	if risk == models.RiskHigh {
		score += highHealthRiskBonus
	}
	if score > maxRiskScore {
		score = maxRiskScore
	}
	if score < 0 {
		score = 0
	}
	return score
}
