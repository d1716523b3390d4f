package catalog

import "sync"

var defaultConditions = []ConditionRecord{
	{
		Name:         "Common Cold",
		Symptoms:     []string{"cough", "fever", "headache", "fatigue", "runny nose", "sore throat"},
		DoctorType:   "General Physician",
		Description:  "A viral infection affecting the nose and throat",
		Causes:       []string{"Viral infection", "Weakened immune system", "Close contact with infected person"},
		Prevention:   []string{"Wash hands frequently", "Avoid close contact with sick people", "Get adequate rest"},
		FoodsToEat:   []string{"Warm soups", "Citrus fruits", "Ginger tea", "Honey"},
		FoodsToAvoid: []string{"Dairy products", "Sugary foods", "Alcohol", "Processed foods"},
		Severity:     Mild,
		Category:     "Respiratory",
	},
	{
		Name:         "Influenza (Flu)",
		Symptoms:     []string{"fever", "cough", "headache", "fatigue", "muscle aches", "chills", "sore throat"},
		DoctorType:   "General Physician",
		Description:  "A viral infection that attacks your respiratory system",
		Causes:       []string{"Influenza virus", "Weakened immune system", "Seasonal exposure"},
		Prevention:   []string{"Annual flu vaccination", "Frequent handwashing", "Avoid crowded places during flu season"},
		FoodsToEat:   []string{"Chicken soup", "Herbal teas", "Citrus fruits", "Garlic"},
		FoodsToAvoid: []string{"Alcohol", "Caffeine", "Sugary drinks", "Heavy meals"},
		Severity:     Moderate,
		Category:     "Respiratory",
	},
	{
		Name:         "Migraine",
		Symptoms:     []string{"headache", "nausea", "dizziness", "light sensitivity", "sound sensitivity"},
		DoctorType:   "Neurologist",
		Description:  "A recurring headache disorder characterized by moderate to severe headaches",
		Causes:       []string{"Stress", "Hormonal changes", "Certain foods", "Sleep changes"},
		Prevention:   []string{"Regular sleep schedule", "Stress management", "Avoid trigger foods", "Stay hydrated"},
		FoodsToEat:   []string{"Magnesium-rich foods", "Ginger", "Almonds", "Leafy greens"},
		FoodsToAvoid: []string{"Aged cheese", "Chocolate", "Alcohol", "Processed meats"},
		Severity:     Moderate,
		Category:     "Neurological",
	},
	{
		Name:         "Gastroenteritis",
		Symptoms:     []string{"nausea", "vomiting", "diarrhea", "abdominal pain", "fever", "fatigue"},
		DoctorType:   "Gastroenterologist",
		Description:  "Inflammation of the stomach and intestines",
		Causes:       []string{"Viral infection", "Bacterial infection", "Food poisoning", "Poor hygiene"},
		Prevention:   []string{"Proper food handling", "Hand hygiene", "Safe water consumption", "Vaccination"},
		FoodsToEat:   []string{"BRAT diet (Bananas, Rice, Applesauce, Toast)", "Clear broths", "Electrolyte drinks"},
		FoodsToAvoid: []string{"Dairy products", "Fatty foods", "Spicy foods", "Alcohol"},
		Severity:     Moderate,
		Category:     "Gastrointestinal",
	},
	{
		Name:         "Hypertension (High Blood Pressure)",
		Symptoms:     []string{"headache", "dizziness", "chest pain", "shortness of breath", "fatigue"},
		DoctorType:   "Cardiologist",
		Description:  "A condition where blood pressure in arteries is persistently elevated",
		Causes:       []string{"Poor diet", "Lack of exercise", "Obesity", "Stress", "Genetics"},
		Prevention:   []string{"Regular exercise", "Healthy diet", "Limit sodium intake", "Manage stress"},
		FoodsToEat:   []string{"Leafy greens", "Berries", "Beets", "Oats", "Bananas"},
		FoodsToAvoid: []string{"High sodium foods", "Processed foods", "Excessive alcohol", "Sugary drinks"},
		Severity:     Severe,
		Category:     "Cardiovascular",
	},
	{
		Name:         "Anxiety Disorder",
		Symptoms:     []string{"fatigue", "headache", "dizziness", "chest pain", "shortness of breath", "rapid heartbeat"},
		DoctorType:   "Psychiatrist",
		Description:  "A mental health disorder characterized by excessive worry and fear",
		Causes:       []string{"Stress", "Trauma", "Genetics", "Brain chemistry imbalance"},
		Prevention:   []string{"Regular exercise", "Mindfulness practices", "Adequate sleep", "Social support"},
		FoodsToEat:   []string{"Complex carbohydrates", "Omega-3 rich fish", "Probiotics", "Herbal teas"},
		FoodsToAvoid: []string{"Caffeine", "Alcohol", "Processed sugars", "High-fat foods"},
		Severity:     Moderate,
		Category:     "Mental Health",
	},
	{
		Name:         "Asthma Attack",
		Symptoms:     []string{"shortness of breath", "cough", "chest pain", "wheezing", "fatigue"},
		DoctorType:   "Pulmonologist",
		Description:  "A condition where airways narrow and swell, producing extra mucus",
		Causes:       []string{"Allergens", "Air pollution", "Exercise", "Weather changes", "Stress"},
		Prevention:   []string{"Avoid triggers", "Take prescribed medications", "Monitor air quality", "Regular check-ups"},
		FoodsToEat:   []string{"Anti-inflammatory foods", "Vitamin D rich foods", "Magnesium sources", "Antioxidant-rich fruits"},
		FoodsToAvoid: []string{"Sulfites", "Food additives", "Excessive salt", "Processed foods"},
		Severity:     Severe,
		Category:     "Respiratory",
	},
	{
		Name:         "Dehydration",
		Symptoms:     []string{"dizziness", "fatigue", "headache", "dry mouth", "decreased urination"},
		DoctorType:   "General Physician",
		Description:  "A condition that occurs when you use or lose more fluid than you take in",
		Causes:       []string{"Insufficient water intake", "Excessive sweating", "Fever", "Vomiting", "Diarrhea"},
		Prevention:   []string{"Drink plenty of water", "Monitor urine color", "Increase intake during exercise", "Eat water-rich foods"},
		FoodsToEat:   []string{"Water-rich fruits", "Coconut water", "Broths", "Herbal teas"},
		FoodsToAvoid: []string{"Alcohol", "Caffeine", "Sugary drinks", "High-sodium foods"},
		Severity:     Mild,
		Category:     "General",
	},
}

var defaultSynonyms = SynonymTable{
	"fever":               {"high temperature", "feverish", "pyrexia"},
	"cough":               {"coughing"},
	"headache":            {"head pain", "head hurts", "head ache"},
	"fatigue":             {"tired", "exhausted", "weakness", "lethargy"},
	"runny nose":          {"stuffy nose", "congestion", "sneezing"},
	"sore throat":         {"throat pain", "scratchy throat"},
	"muscle aches":        {"body aches", "muscle pain", "myalgia"},
	"chills":              {"shivering", "shivers"},
	"nausea":              {"queasy", "nauseous"},
	"vomiting":            {"throwing up", "threw up"},
	"diarrhea":            {"diarrhoea", "loose stools"},
	"abdominal pain":      {"stomach ache", "stomach pain", "belly pain", "cramps"},
	"dizziness":           {"dizzy", "lightheaded", "light-headed", "vertigo"},
	"light sensitivity":   {"photophobia"},
	"sound sensitivity":   {"phonophobia"},
	"chest pain":          {"chest tightness", "chest pressure"},
	"shortness of breath": {"breathless", "difficulty breathing", "out of breath"},
	"rapid heartbeat":     {"palpitations", "racing heart"},
	"wheezing":            {"whistling breath"},
	"dry mouth":           {"thirst", "parched"},
	"decreased urination": {"dark urine", "less urine"},
}

var loadDefault = sync.OnceValue(func() *Catalog {
	return MustNew(defaultConditions, defaultSynonyms)
})

// Default returns the built-in catalog. It is built on first use and shared
// for the life of the process.
func Default() *Catalog {
	return loadDefault()
}

// MustNew is like New but panics on invalid input. Intended for static data.
func MustNew(records []ConditionRecord, synonyms SynonymTable) *Catalog {
	c, err := New(records, synonyms)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return c
}
