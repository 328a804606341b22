// Package refdata содержит статические справочные таблицы генератора:
// административную иерархию, координатные привязки городов, пулы имен
// и словари. Только данные, без поведения.
package refdata

import (
	"github.com/shenikar/sar_coordination_system/internal/models"
)

// Governorate - губернаторство с входящими в него городами
type Governorate struct {
	Name   string
	Cities []string
}

// Region - административный регион
type Region struct {
	Name         string
	Governorates []Governorate
}

// Regions - строгая иерархия: регион -> губернаторство -> город
var Regions = []Region{
	{
		Name: "منطقة الرياض",
		Governorates: []Governorate{
			{Name: "الرياض", Cities: []string{"الرياض"}},
			{Name: "الخرج", Cities: []string{"الخرج"}},
			{Name: "الدوادمي", Cities: []string{"الدوادمي"}},
			{Name: "القويعية", Cities: []string{"القويعية"}},
			{Name: "عفيف", Cities: []string{"عفيف"}},
			{Name: "وادي الدواسر", Cities: []string{"وادي الدواسر"}},
			{Name: "الزلفي", Cities: []string{"الزلفي"}},
			{Name: "شقراء", Cities: []string{"شقراء"}},
			{Name: "المجمعة", Cities: []string{"المجمعة"}},
			{Name: "الأفلاج", Cities: []string{"ليلى"}},
			{Name: "السليل", Cities: []string{"السليل"}},
		},
	},
	{
		Name: "منطقة مكة المكرمة",
		Governorates: []Governorate{
			{Name: "مكة المكرمة", Cities: []string{"مكة المكرمة"}},
			{Name: "جدة", Cities: []string{"جدة"}},
			{Name: "الطائف", Cities: []string{"الطائف"}},
			{Name: "القنفذة", Cities: []string{"القنفذة"}},
			{Name: "الليث", Cities: []string{"الليث"}},
			{Name: "رابغ", Cities: []string{"رابغ"}},
		},
	},
	{
		Name: "منطقة المدينة المنورة",
		Governorates: []Governorate{
			{Name: "المدينة المنورة", Cities: []string{"المدينة المنورة"}},
			{Name: "ينبع", Cities: []string{"ينبع"}},
			{Name: "العلا", Cities: []string{"العلا"}},
			{Name: "بدر", Cities: []string{"بدر"}},
		},
	},
	{
		Name: "منطقة القصيم",
		Governorates: []Governorate{
			{Name: "بريدة", Cities: []string{"بريدة"}},
			{Name: "عنيزة", Cities: []string{"عنيزة"}},
			{Name: "الرس", Cities: []string{"الرس"}},
			{Name: "المذنب", Cities: []string{"المذنب"}},
		},
	},
	{
		Name: "المنطقة الشرقية",
		Governorates: []Governorate{
			{Name: "الدمام", Cities: []string{"الدمام"}},
			{Name: "الخبر", Cities: []string{"الخبر"}},
			{Name: "الظهران", Cities: []string{"الظهران"}},
			{Name: "الأحساء", Cities: []string{"الهفوف"}},
			{Name: "حفر الباطن", Cities: []string{"حفر الباطن"}},
			{Name: "الجبيل", Cities: []string{"الجبيل"}},
		},
	},
	{
		Name: "منطقة عسير",
		Governorates: []Governorate{
			{Name: "أبها", Cities: []string{"أبها"}},
			{Name: "خميس مشيط", Cities: []string{"خميس مشيط"}},
			{Name: "بيشة", Cities: []string{"بيشة"}},
			{Name: "محايل عسير", Cities: []string{"محايل"}},
		},
	},
	{
		Name: "منطقة حائل",
		Governorates: []Governorate{
			{Name: "حائل", Cities: []string{"حائل"}},
			{Name: "بقعاء", Cities: []string{"بقعاء"}},
			{Name: "الغزالة", Cities: []string{"الغزالة"}},
		},
	},
	{
		Name: "منطقة تبوك",
		Governorates: []Governorate{
			{Name: "تبوك", Cities: []string{"تبوك"}},
			{Name: "ضباء", Cities: []string{"ضباء"}},
			{Name: "الوجه", Cities: []string{"الوجه"}},
		},
	},
	{
		Name: "منطقة الجوف",
		Governorates: []Governorate{
			{Name: "سكاكا", Cities: []string{"سكاكا"}},
			{Name: "دومة الجندل", Cities: []string{"دومة الجندل"}},
			{Name: "القريات", Cities: []string{"القريات"}},
			{Name: "طبرجل", Cities: []string{"طبرجل"}},
		},
	},
	{
		Name: "منطقة جازان",
		Governorates: []Governorate{
			{Name: "جازان", Cities: []string{"جازان"}},
			{Name: "صبيا", Cities: []string{"صبيا"}},
			{Name: "أبو عريش", Cities: []string{"أبو عريش"}},
		},
	},
	{
		Name: "منطقة نجران",
		Governorates: []Governorate{
			{Name: "نجران", Cities: []string{"نجران"}},
			{Name: "شرورة", Cities: []string{"شرورة"}},
		},
	},
	{
		Name: "منطقة الباحة",
		Governorates: []Governorate{
			{Name: "الباحة", Cities: []string{"الباحة"}},
			{Name: "بلجرشي", Cities: []string{"بلجرشي"}},
		},
	},
	{
		Name: "منطقة الحدود الشمالية",
		Governorates: []Governorate{
			{Name: "عرعر", Cities: []string{"عرعر"}},
			{Name: "رفحاء", Cities: []string{"رفحاء"}},
		},
	},
}

// CityAnchors - фиксированные опорные координаты городов.
// Города без привязки исключаются из выборки при генерации.
var CityAnchors = map[string]models.GeoCoordinate{
	"الرياض":         {Lat: 24.7136, Lng: 46.6753},
	"الدرعية":        {Lat: 24.7431, Lng: 46.5746},
	"الخرج":          {Lat: 24.1500, Lng: 47.3000},
	"وادي الدواسر":   {Lat: 20.4667, Lng: 44.8000},
	"السليل":         {Lat: 20.4600, Lng: 45.5700},
	"القويعية":       {Lat: 24.0667, Lng: 45.2667},
	"المجمعة":        {Lat: 25.9184, Lng: 45.3615},
	"الزلفي":         {Lat: 26.2995, Lng: 44.7988},
	"شقراء":          {Lat: 25.2498, Lng: 45.2536},
	"عفيف":           {Lat: 23.9065, Lng: 42.9389},
	"الدوادمي":       {Lat: 24.5071, Lng: 44.3924},
	"ليلى":           {Lat: 22.2925, Lng: 46.7269},
	"مكة المكرمة":    {Lat: 21.3891, Lng: 39.8579},
	"جدة":            {Lat: 21.4858, Lng: 39.1925},
	"الطائف":         {Lat: 21.2854, Lng: 40.4245},
	"القنفذة":        {Lat: 19.1281, Lng: 41.0787},
	"الليث":          {Lat: 20.1417, Lng: 40.2800},
	"رابغ":           {Lat: 22.7986, Lng: 39.0349},
	"المدينة المنورة": {Lat: 24.5247, Lng: 39.5692},
	"ينبع":           {Lat: 24.0232, Lng: 38.0637},
	"العلا":          {Lat: 26.6032, Lng: 37.9304},
	"بدر":            {Lat: 23.7836, Lng: 38.7915},
	"الدمام":         {Lat: 26.4207, Lng: 50.0888},
	"الظهران":        {Lat: 26.2361, Lng: 50.0393},
	"الخبر":          {Lat: 26.2172, Lng: 50.1971},
	"الهفوف":         {Lat: 25.3667, Lng: 49.5833},
	"حفر الباطن":     {Lat: 28.4328, Lng: 45.9708},
	"الجبيل":         {Lat: 27.0112, Lng: 49.6609},
	"بريدة":          {Lat: 26.3260, Lng: 43.9750},
	"عنيزة":          {Lat: 26.0844, Lng: 43.9877},
	"الرس":           {Lat: 25.8673, Lng: 43.4983},
	"المذنب":         {Lat: 25.8667, Lng: 44.2167},
	"أبها":           {Lat: 18.2164, Lng: 42.5053},
	"خميس مشيط":      {Lat: 18.3000, Lng: 42.7333},
	"بيشة":           {Lat: 19.9917, Lng: 42.6000},
	"محايل":          {Lat: 18.5500, Lng: 42.0500},
	"حائل":           {Lat: 27.5219, Lng: 41.6907},
	"بقعاء":          {Lat: 27.8833, Lng: 42.4000},
	"الغزالة":        {Lat: 26.5500, Lng: 41.2833},
	"تبوك":           {Lat: 28.3833, Lng: 36.5667},
	"ضباء":           {Lat: 27.3517, Lng: 35.6901},
	"الوجه":          {Lat: 26.2455, Lng: 36.4525},
	"جازان":          {Lat: 16.8894, Lng: 42.5511},
	"أبو عريش":       {Lat: 16.9667, Lng: 42.8333},
	"صبيا":           {Lat: 17.1500, Lng: 42.6167},
	"نجران":          {Lat: 17.4917, Lng: 44.1322},
	"شرورة":          {Lat: 17.4778, Lng: 47.1111},
	"الباحة":         {Lat: 20.0129, Lng: 41.4677},
	"بلجرشي":         {Lat: 19.8583, Lng: 41.5667},
	"سكاكا":          {Lat: 29.9697, Lng: 40.2064},
	"دومة الجندل":    {Lat: 29.8114, Lng: 39.8667},
	"القريات":        {Lat: 31.3317, Lng: 37.3428},
	"طبرجل":          {Lat: 30.5000, Lng: 39.0000},
	"عرعر":           {Lat: 30.9753, Lng: 41.0381},
	"رفحاء":          {Lat: 29.6386, Lng: 43.5042},
}

// MaleFirstNames - мужской пул имен
var MaleFirstNames = []string{
	"محمد", "أحمد", "علي", "سعيد", "خالد", "فهد", "عبدالله", "سلطان", "تركي", "نايف",
	"سلمان", "عمر", "إبراهيم", "يوسف", "بدر", "ماجد", "فيصل", "سعود", "عبدالعزيز", "مشعل",
}

// FemaleFirstNames - женский пул имен
var FemaleFirstNames = []string{
	"نورة", "سارة", "فاطمة", "مريم", "ريم", "مها", "جواهر", "العنود", "أمل", "هدى",
	"ليلى", "زينب", "عائشة", "منيرة", "حصة", "لطيفة",
}

// FatherNames - имена отцов, всегда из мужского пула
var FatherNames = MaleFirstNames

// Типы местности. Порядок фиксирован: словари разыгрываются по индексу.
const (
	TerrainValley          = "valley"
	TerrainDesert          = "desert"
	TerrainMountains       = "mountains"
	TerrainOpenPlain       = "open_plain"
	TerrainUrban           = "urban"
	TerrainWildernessRoads = "wilderness_roads"
)

var Terrains = []string{
	TerrainValley, TerrainDesert, TerrainMountains,
	TerrainOpenPlain, TerrainUrban, TerrainWildernessRoads,
}

// Погодные контексты
const (
	WeatherStable     = "stable"
	WeatherRain       = "rain"
	WeatherFlood      = "flood"
	WeatherDustStorm  = "dust_storm"
	WeatherStrongWind = "strong_wind"
	WeatherDenseFog   = "dense_fog"
	WeatherHeatStress = "heat_stress"
	WeatherHeatWave   = "heat_wave"
)

var WeatherContexts = []string{
	WeatherStable, WeatherRain, WeatherFlood, WeatherDustStorm,
	WeatherStrongWind, WeatherDenseFog, WeatherHeatStress, WeatherHeatWave,
}

// TerrainWeather - совместимость местности и погоды: в пустыне не бывает
// сели, в городе не бывает теплового истощения. Первым в каждом списке
// стоит нейтральный контекст.
var TerrainWeather = map[string][]string{
	TerrainValley:          {WeatherStable, WeatherRain, WeatherFlood, WeatherStrongWind, WeatherDenseFog},
	TerrainDesert:          {WeatherStable, WeatherDustStorm, WeatherStrongWind, WeatherHeatStress, WeatherHeatWave},
	TerrainMountains:       {WeatherStable, WeatherRain, WeatherFlood, WeatherDenseFog, WeatherStrongWind},
	TerrainOpenPlain:       {WeatherStable, WeatherRain, WeatherDustStorm, WeatherStrongWind, WeatherHeatWave},
	TerrainUrban:           {WeatherStable, WeatherRain, WeatherDustStorm, WeatherHeatWave},
	TerrainWildernessRoads: {WeatherStable, WeatherDustStorm, WeatherStrongWind, WeatherHeatStress, WeatherHeatWave},
}

// Хронические заболевания. "none" первым: по умолчанию человек здоров.
const (
	DiseaseNone         = "none"
	DiseaseDiabetes     = "diabetes"
	DiseaseHypertension = "hypertension"
	DiseaseHeart        = "heart"
	DiseaseAsthma       = "asthma"
	DiseaseEpilepsy     = "epilepsy"
	DiseaseAlzheimers   = "alzheimers"
)

var Diseases = []string{
	DiseaseNone, DiseaseDiabetes, DiseaseHypertension, DiseaseHeart,
	DiseaseAsthma, DiseaseEpilepsy, DiseaseAlzheimers,
}

// MinorDisqualifiedDiseases - диагнозы, не присваиваемые несовершеннолетним
var MinorDisqualifiedDiseases = map[string]bool{
	DiseaseHypertension: true,
	DiseaseAlzheimers:   true,
}

// HighRiskDiseases - диагнозы, дающие уровень риска "high"
var HighRiskDiseases = map[string]bool{
	DiseaseHeart:    true,
	DiseaseEpilepsy: true,
}

// SurvivalPenaltyHours - штрафы к оценке выживания за неблагоприятные
// сочетания местности и погоды, в часах
var SurvivalPenaltyHours = map[string]map[string]int{
	TerrainValley:          {WeatherFlood: 18},
	TerrainMountains:       {WeatherFlood: 15, WeatherDenseFog: 12},
	TerrainDesert:          {WeatherHeatWave: 15, WeatherHeatStress: 12},
	TerrainOpenPlain:       {WeatherDustStorm: 12},
	TerrainWildernessRoads: {WeatherHeatStress: 12, WeatherDustStorm: 12},
}

// AdverseWeather - погодные контексты, повышающие числовой риск-балл
var AdverseWeather = map[string]bool{
	WeatherFlood:      true,
	WeatherDustStorm:  true,
	WeatherHeatStress: true,
	WeatherHeatWave:   true,
}

// Statuses - словарь статусов инцидента
var Statuses = []models.IncidentStatus{
	models.StatusNew, models.StatusSearching, models.StatusMonitoring,
	models.StatusFoundAlive, models.StatusFoundDeceased, models.StatusClosed,
}

// Sources - источники поступления бланков о пропаже
var Sources = []string{
	"منصة أبشر", "نظام مُغيث", "اتصال هاتفي", "دورية أمنية", "بلاغ مواطن", "مركز العمليات 911",
}

// MaleClothing - описания одежды для мужчин
var MaleClothing = []string{
	"يرتدي ثوباً أبيض وشماغ أحمر، آخر مشاهدة كانت بالقرب من محطة الوقود.",
	"يرتدي بدلة رياضية زرقاء، يعاني من النسيان في بعض الأحيان.",
	"كان يرتدي قميصاً رمادياً وبنطال جينز، يحمل حقيبة ظهر سوداء.",
	"يرتدي ملابس برية (كاكي)، كان متوجهاً لرعي الأغنام.",
	"يرتدي ثوباً بنياً، لديه علامة مميزة (جرح قديم) على يده اليمنى.",
	"شوهد يرتدي معطفاً شتوياً أسود رغم حرارة الجو، يبدو عليه الارتباك.",
	"يرتدي زي العمل الرسمي (أزرق غامق)، خرج ولم يعد.",
}

// FemaleClothing - описания одежды для женщин
var FemaleClothing = []string{
	"ترتدي عباءة سوداء ونقاب، شوهدت آخر مرة تخرج من المنزل سيرًا على الأقدام.",
	"ترتدي عباءة ملونة وطرحة بيضاء، تعاني من صعوبة في المشي.",
	"كانت ترتدي فستاناً منزلياً وعباءة كتف، خرجت للبحث عن الماشية.",
	"ترتدي عباءة رأس سوداء، تحمل حقيبة يدوية بنية اللون.",
	"ترتدي عباءة مطرزة، شوهدت بالقرب من السوق الشعبي.",
	"ترتدي عباءة رمادية، كانت بصحبة طفل صغير قبل أن تفقد.",
}

// MinorClothing - описания одежды для несовершеннолетних
var MinorClothing = []string{
	"يرتدي ملابس مدرسية، يحمل حقيبة ظهر صغيرة.",
	"يرتدي بدلة رياضية ملونة وحذاء رياضي أبيض.",
	"شوهد آخر مرة بملابس اللعب بالقرب من المنزل.",
}

// CompanionRelations - варианты родства/связи спутника
var CompanionRelations = []string{
	"صديق", "أخ", "ابن عم", "سائق", "قريب",
}

// SensorAnalysisTexts - тексты аналитики по показаниям сенсоров
var SensorAnalysisTexts = []string{
	"رصد حركة غير اعتيادية في الوادي الجنوبي.",
	"ارتفاع درجة حرارة الجسم المرصودة حرارياً.",
	"مرور مركبة مشبوهة في نطاق البحث.",
	"تغير مناخي مفاجئ وهبوب رياح قوية.",
	"انقطاع إشارة الهاتف في منطقة جبلية وعرة.",
}

// SensorMetricLabels - подписи метрик по типу сенсора
var SensorMetricLabels = map[models.SensorType]string{
	models.SensorThermal: "حرارة المكان",
	models.SensorMotion:  "حركة الأجسام",
	models.SensorCamera:  "مرور المركبات",
	models.SensorSeismic: "تغير مناخي مفاجئ",
}

// SensorTypes - словарь типов сенсоров
var SensorTypes = []models.SensorType{
	models.SensorThermal, models.SensorMotion, models.SensorCamera, models.SensorSeismic,
}

// DiseaseNamesAr - арабские названия заболеваний для нарративных описаний
var DiseaseNamesAr = map[string]string{
	DiseaseNone:         "لا يوجد",
	DiseaseDiabetes:     "سكري",
	DiseaseHypertension: "ضغط",
	DiseaseHeart:        "قلب",
	DiseaseAsthma:       "ربو",
	DiseaseEpilepsy:     "صرع",
	DiseaseAlzheimers:   "زهايمر",
}

// TerrainNamesAr - арабские названия местности для нарративных описаний
var TerrainNamesAr = map[string]string{
	TerrainValley:          "وادي",
	TerrainDesert:          "صحراء",
	TerrainMountains:       "جبال",
	TerrainOpenPlain:       "سهل مفتوح",
	TerrainUrban:           "منطقة حضرية",
	TerrainWildernessRoads: "طرق برية",
}
