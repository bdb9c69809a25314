package i18n

var catalog = map[Locale]map[Key]string{
	English: {
		KeyInvalidInput:       "Enter a valid number",
		KeyUnknownUnit:        "Unknown unit",
		KeyUnknownCategory:    "Unknown category",
		KeyPreferenceNotFound: "No saved preference",

		"category.length":      "Length",
		"category.weight":      "Weight",
		"category.volume":      "Volume",
		"category.area":        "Area",
		"category.temperature": "Temperature",

		"unit.length.mm": "Millimeter (mm)",
		"unit.length.cm": "Centimeter (cm)",
		"unit.length.m":  "Meter (m)",
		"unit.length.km": "Kilometer (km)",
		"unit.length.in": "Inch (in)",
		"unit.length.ft": "Foot (ft)",
		"unit.length.yd": "Yard (yd)",
		"unit.length.mi": "Mile (mi)",

		"unit.weight.mg": "Milligram (mg)",
		"unit.weight.g":  "Gram (g)",
		"unit.weight.kg": "Kilogram (kg)",
		"unit.weight.t":  "Tonne (t)",
		"unit.weight.oz": "Ounce (oz)",
		"unit.weight.lb": "Pound (lb)",

		"unit.volume.ml":   "Milliliter (ml)",
		"unit.volume.l":    "Liter (l)",
		"unit.volume.m3":   "Cubic meter (m³)",
		"unit.volume.floz": "US fluid ounce (fl oz)",
		"unit.volume.cup":  "US cup",
		"unit.volume.pt":   "US pint (pt)",
		"unit.volume.qt":   "US quart (qt)",
		"unit.volume.gal":  "US gallon (gal)",

		"unit.area.cm2": "Square centimeter (cm²)",
		"unit.area.m2":  "Square meter (m²)",
		"unit.area.km2": "Square kilometer (km²)",
		"unit.area.ha":  "Hectare (ha)",
		"unit.area.ft2": "Square foot (ft²)",
		"unit.area.ac":  "Acre (ac)",
		"unit.area.py":  "Pyeong (py)",

		"unit.temperature.c": "Celsius (°C)",
		"unit.temperature.f": "Fahrenheit (°F)",
		"unit.temperature.k": "Kelvin (K)",
	},
	Korean: {
		KeyInvalidInput:       "올바른 숫자를 입력하세요",
		KeyUnknownUnit:        "알 수 없는 단위입니다",
		KeyUnknownCategory:    "알 수 없는 분류입니다",
		KeyPreferenceNotFound: "저장된 설정이 없습니다",

		"category.length":      "길이",
		"category.weight":      "무게",
		"category.volume":      "부피",
		"category.area":        "넓이",
		"category.temperature": "온도",

		"unit.length.mm": "밀리미터 (mm)",
		"unit.length.cm": "센티미터 (cm)",
		"unit.length.m":  "미터 (m)",
		"unit.length.km": "킬로미터 (km)",
		"unit.length.in": "인치 (in)",
		"unit.length.ft": "피트 (ft)",
		"unit.length.yd": "야드 (yd)",
		"unit.length.mi": "마일 (mi)",

		"unit.weight.mg": "밀리그램 (mg)",
		"unit.weight.g":  "그램 (g)",
		"unit.weight.kg": "킬로그램 (kg)",
		"unit.weight.t":  "톤 (t)",
		"unit.weight.oz": "온스 (oz)",
		"unit.weight.lb": "파운드 (lb)",

		"unit.volume.ml":   "밀리리터 (ml)",
		"unit.volume.l":    "리터 (l)",
		"unit.volume.m3":   "세제곱미터 (m³)",
		"unit.volume.floz": "미국 액량 온스 (fl oz)",
		"unit.volume.cup":  "미국 컵",
		"unit.volume.pt":   "미국 파인트 (pt)",
		"unit.volume.qt":   "미국 쿼트 (qt)",
		"unit.volume.gal":  "미국 갤런 (gal)",

		"unit.area.cm2": "제곱센티미터 (cm²)",
		"unit.area.m2":  "제곱미터 (m²)",
		"unit.area.km2": "제곱킬로미터 (km²)",
		"unit.area.ha":  "헥타르 (ha)",
		"unit.area.ft2": "제곱피트 (ft²)",
		"unit.area.ac":  "에이커 (ac)",
		"unit.area.py":  "평 (py)",

		"unit.temperature.c": "섭씨 (°C)",
		"unit.temperature.f": "화씨 (°F)",
		"unit.temperature.k": "켈빈 (K)",
	},
	Japanese: {
		KeyInvalidInput:       "有効な数値を入力してください",
		KeyUnknownUnit:        "不明な単位です",
		KeyUnknownCategory:    "不明なカテゴリです",
		KeyPreferenceNotFound: "保存された設定がありません",

		"category.length":      "長さ",
		"category.weight":      "重さ",
		"category.volume":      "体積",
		"category.area":        "面積",
		"category.temperature": "温度",

		"unit.length.mm": "ミリメートル (mm)",
		"unit.length.cm": "センチメートル (cm)",
		"unit.length.m":  "メートル (m)",
		"unit.length.km": "キロメートル (km)",
		"unit.length.in": "インチ (in)",
		"unit.length.ft": "フィート (ft)",
		"unit.length.yd": "ヤード (yd)",
		"unit.length.mi": "マイル (mi)",

		"unit.weight.mg": "ミリグラム (mg)",
		"unit.weight.g":  "グラム (g)",
		"unit.weight.kg": "キログラム (kg)",
		"unit.weight.t":  "トン (t)",
		"unit.weight.oz": "オンス (oz)",
		"unit.weight.lb": "ポンド (lb)",

		"unit.volume.ml":   "ミリリットル (ml)",
		"unit.volume.l":    "リットル (l)",
		"unit.volume.m3":   "立方メートル (m³)",
		"unit.volume.floz": "米液量オンス (fl oz)",
		"unit.volume.cup":  "米カップ",
		"unit.volume.pt":   "米パイント (pt)",
		"unit.volume.qt":   "米クォート (qt)",
		"unit.volume.gal":  "米ガロン (gal)",

		"unit.area.cm2": "平方センチメートル (cm²)",
		"unit.area.m2":  "平方メートル (m²)",
		"unit.area.km2": "平方キロメートル (km²)",
		"unit.area.ha":  "ヘクタール (ha)",
		"unit.area.ft2": "平方フィート (ft²)",
		"unit.area.ac":  "エーカー (ac)",
		"unit.area.py":  "坪 (py)",

		"unit.temperature.c": "摂氏 (°C)",
		"unit.temperature.f": "華氏 (°F)",
		"unit.temperature.k": "ケルビン (K)",
	},
}
