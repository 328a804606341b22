// Package generator - движок синтеза инцидентов: для запрошенного числа N
// детерминированно по форме, случайно по значениям производит N внутренне
// согласованных записей о пропавших с геопривязкой, демографическим
// профилем, классификацией риска и прогнозируемыми маршрутами движения.
package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/sar_coordination_system/internal/geopath"
	"github.com/shenikar/sar_coordination_system/internal/models"
	"github.com/shenikar/sar_coordination_system/internal/random"
	"github.com/shenikar/sar_coordination_system/internal/refdata"
)

// ErrGenerationImpossible - справочные таблицы не позволяют выбрать
// валидную локацию (ни один город не разрешается в опорную координату).
// Фатально для всей партии: запись с локацией-заглушкой не допускается.
var ErrGenerationImpossible = errors.New("generator: no city resolves to an anchor coordinate")

// Константы правил синтеза. Доля мужчин зафиксирована как константа
// конфигурации: в исходных вариантах правил встречались и 35%, и 60%.
const (
	maleRatio = 0.35

	minAge     = 4
	maxAge     = 85
	minorAge   = 18
	elderlyAge = 60

	coordJitter  = 0.04
	dedupRetries = 50

	survivalBaseHours          = 48
	survivalMinorHours         = 24
	survivalElderlyHours       = 30
	survivalFloorHours         = 6
	criticalHealthPenaltyHours = 10

	adverseWeatherBonus = 15
	highHealthRiskBonus = 10
	maxRiskScore        = 99
	criticalThreshold   = 85

	companionChance        = 0.2
	sensorAnalysisChance   = 0.5
	volunteerSupportChance = 0.5
)

// pathTiers - три фиксированных уровня прогнозируемых маршрутов.
// Полосы уверенности не пересекаются и упорядочены по убыванию.
var pathTiers = []struct {
	Tier     models.PathTier
	Label    string
	ConfMin  int
	ConfMax  int
	Spread   float64
	SegMin   int
	SegMax   int
}{
	{models.TierPrimary, "مسار مرجح", 70, 90, 0.002, 12, 18},
	{models.TierSecondary, "مسار محتمل", 45, 69, 0.004, 10, 14},
	{models.TierTertiary, "مسار مستبعد", 25, 44, 0.006, 8, 12},
}

// Generator синтезирует партии инцидентов. Вызовы независимы: вся
// изменяемая дедупликация живет внутри одного вызова GenerateIncidents.
type Generator struct {
	src    random.Source
	logger *logrus.Logger
}

func New(src random.Source, logger *logrus.Logger) *Generator {
	return &Generator{
		src:    src,
		logger: logger,
	}
}

// dedupState - множества дедупликации, живущие ровно одну партию
type dedupState struct {
	Names  map[string]bool
	Coords map[string]bool
}

func newDedupState() *dedupState {
	return &dedupState{
		Names:  make(map[string]bool),
		Coords: make(map[string]bool),
	}
}

// GenerateIncidents производит count инцидентов. Либо возвращается вся
// запрошенная партия, либо ошибка - частичных партий не бывает.
func (g *Generator) GenerateIncidents(count int) ([]*models.Incident, error) {
	log := g.logger.WithFields(logrus.Fields{
		"component": "generator",
		"method":    "GenerateIncidents",
		"count":     count,
	})

	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", random.ErrInvalidArgument, count)
	}

	locs := anchoredLocations()
	if len(locs) == 0 {
		log.Error("Reference tables contain no anchored city")
		return nil, ErrGenerationImpossible
	}

	dedup := newDedupState()
	year := time.Now().Year()

	incidents := make([]*models.Incident, 0, count)
	for i := 0; i < count; i++ {
		incident, err := g.assembleIncident(i, year, locs, dedup)
		if err != nil {
			log.WithError(err).Error("Failed to assemble incident, aborting batch")
			return nil, fmt.Errorf("generator: could not assemble incident %d: %w", i, err)
		}
		incidents = append(incidents, incident)
	}

	log.WithField("generated", len(incidents)).Info("Incident batch generated")
	return incidents, nil
}

// assembleIncident собирает одну полную запись об инциденте
func (g *Generator) assembleIncident(index, year int, locs []location, dedup *dedupState) (*models.Incident, error) {
	p, err := g.synthesizePerson(locs, dedup)
	if err != nil {
		return nil, err
	}

	// Эскалация категориального уровня по финализированному баллу.
	// Применяется ровно один раз, после расчета балла.
	if p.RiskScore >= criticalThreshold {
		p.RiskLevel = models.RiskCritical
	}

	companions, err := g.buildCompanions(p.Gender)
	if err != nil {
		return nil, err
	}

	paths, err := g.buildPredictedPaths(p.Coords)
	if err != nil {
		return nil, err
	}

	status, err := random.Choice(g.src, refdata.Statuses)
	if err != nil {
		return nil, err
	}
	source, err := random.Choice(g.src, refdata.Sources)
	if err != nil {
		return nil, err
	}
	hoursAgo, err := random.IntRange(g.src, 1, 72)
	if err != nil {
		return nil, err
	}
	confidence, err := random.IntRange(g.src, 60, 99)
	if err != nil {
		return nil, err
	}

	sensorAnalysis := ""
	if random.Chance(g.src, sensorAnalysisChance) {
		sensorAnalysis, err = random.Choice(g.src, refdata.SensorAnalysisTexts)
		if err != nil {
			return nil, err
		}
	}

	description, err := g.buildDescription(p, hoursAgo, len(companions))
	if err != nil {
		return nil, err
	}

	hasChronic := len(p.Diseases) > 0 && p.Diseases[0] != refdata.DiseaseNone

	return &models.Incident{
		ID:               fmt.Sprintf("INC-%d-%d", year, 1000+index),
		MissingName:      p.Name,
		Age:              p.Age,
		Gender:           p.Gender,
		Region:           p.Loc.Region,
		Governorate:      p.Loc.Governorate,
		City:             p.Loc.City,
		LastSeenCoords:   p.Coords,
		CityAnchorCoords: p.Loc.Anchor,
		TerrainType:      p.Terrain,
		WeatherContext:   p.Weather,
		Status:           status,
		LastSeenHoursAgo: hoursAgo,
		ReportDate:       time.Now().UTC(),
		Source:           source,
		Description:      description,
		HealthProfile: models.HealthProfile{
			ChronicDiseases: p.Diseases,
			RiskLevel:       p.RiskLevel,
		},
		AIProfile: models.AIProfile{
			RiskScore:  p.RiskScore,
			Confidence: confidence,
			ShortLine:  "تحليل النطاق الجغرافي مكتمل.",
			Explanation: fmt.Sprintf("تم تحديد مستوى الخطورة (%s) بناءً على %s ووجود أمراض مزمنة (%s).",
				p.RiskLevel, refdata.TerrainNamesAr[p.Terrain], refdata.DiseaseNamesAr[p.Diseases[0]]),
			PredictedPaths:        paths,
			SensorAnalysis:        sensorAnalysis,
			SurvivalEstimateHours: p.SurvivalHours,
		},
		Companions: companions,
		Connections: models.ConnectionStatus{
			Absher:     true,
			Tawakkalna: true,
			Sehaty:     hasChronic,
			NCM:        true,
		},
		HasVolunteerSupport: p.RiskLevel != models.RiskLow && random.Chance(g.src, volunteerSupportChance),
		IsSecurityRouted:    false,
	}, nil
}

// buildPredictedPaths строит ровно три маршрута, по одному на уровень,
// и сортирует их по убыванию уверенности независимо от порядка генерации
func (g *Generator) buildPredictedPaths(start models.GeoCoordinate) ([]models.PredictedPath, error) {
	paths := make([]models.PredictedPath, 0, len(pathTiers))
	for _, tier := range pathTiers {
		confidence, err := random.IntRange(g.src, tier.ConfMin, tier.ConfMax)
		if err != nil {
			return nil, err
		}
		segments, err := random.IntRange(g.src, tier.SegMin, tier.SegMax)
		if err != nil {
			return nil, err
		}
		paths = append(paths, models.PredictedPath{
			Points:     geopath.Walk(g.src, start, segments, tier.Spread),
			Confidence: confidence,
			Label:      tier.Label,
			Tier:       tier.Tier,
		})
	}
	sort.Slice(paths, func(i, j int) bool {
		return paths[i].Confidence > paths[j].Confidence
	})
	return paths, nil
}

// buildCompanions: с вероятностью ~20% у инцидента 1-2 спутника
func (g *Generator) buildCompanions(gender models.Gender) ([]models.Companion, error) {
	if !random.Chance(g.src, companionChance) {
		return nil, nil
	}

	n, err := random.IntRange(g.src, 1, 2)
	if err != nil {
		return nil, err
	}

	name := "مرافق"
	if gender == models.GenderFemale {
		name = "مرافقة"
	}

	companions := make([]models.Companion, 0, n)
	for i := 0; i < n; i++ {
		relation, err := random.Choice(g.src, refdata.CompanionRelations)
		if err != nil {
			return nil, err
		}
		phone, err := random.IntRange(g.src, 10000000, 99999999)
		if err != nil {
			return nil, err
		}
		companions = append(companions, models.Companion{
			Name:     name,
			Relation: relation,
			Phone:    fmt.Sprintf("05%d", phone),
		})
	}
	return companions, nil
}

// buildDescription склеивает нарративное описание в фиксированном порядке:
// время и место, одежда, состояние здоровья, спутники.
// Все фразы согласованы по роду субъекта, как и пулы одежды.
func (g *Generator) buildDescription(p person, hoursAgo, companionCount int) (string, error) {
	clothingPool := refdata.MaleClothing
	switch {
	case p.Age < minorAge:
		clothingPool = refdata.MinorClothing
	case p.Gender == models.GenderFemale:
		clothingPool = refdata.FemaleClothing
	}
	clothing, err := random.Choice(g.src, clothingPool)
	if err != nil {
		return "", err
	}

	lostVerb := "فُقد"
	health := "لا يعاني من أمراض مزمنة."
	chronicForm := "يعاني من حالة مزمنة (%s)."
	companionsLine := "كان بمفرده وقت الاختفاء."
	companionsForm := "كان برفقته %d من المرافقين."
	if p.Gender == models.GenderFemale {
		lostVerb = "فُقدت"
		health = "لا تعاني من أمراض مزمنة."
		chronicForm = "تعاني من حالة مزمنة (%s)."
		companionsLine = "كانت بمفردها وقت الاختفاء."
		companionsForm = "كانت برفقتها %d من المرافقين."
	}

	if p.Diseases[0] != refdata.DiseaseNone {
		health = fmt.Sprintf(chronicForm, refdata.DiseaseNamesAr[p.Diseases[0]])
	}
	if companionCount > 0 {
		companionsLine = fmt.Sprintf(companionsForm, companionCount)
	}

	return fmt.Sprintf("%s قبل %d ساعة في %s (%s). %s %s %s",
		lostVerb, hoursAgo, p.Loc.City, refdata.TerrainNamesAr[p.Terrain],
		clothing, health, companionsLine), nil
}
