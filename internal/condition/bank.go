package condition

import "fmt"

// templates is the curated bank, indexed lazily by name.
var templates = []Template{
	{
		Condition:    "Heart Failure",
		AgeRange:     AgeRange{Min: 65, Max: 85},
		Presentation: "Worsening shortness of breath over three days, now breathless at rest. Sleeping upright in a chair. Ankles visibly swollen.",
		Medications:  []string{"Furosemide", "Ramipril", "Bisoprolol", "Spironolactone", "Atorvastatin"},
		History:      []string{"Heart failure", "High blood pressure", "Previous heart attack"},
		Dispatch:     "{age} year old {gender}, difficulty breathing, worse on lying flat. Conscious and alert. Known heart failure.",
		GPLetterTypes: []string{
			"Cardiology clinic follow-up",
			"Medication review",
		},
	},
	{
		Condition:    "COPD Exacerbation",
		AgeRange:     AgeRange{Min: 60, Max: 88},
		Presentation: "Increasing wheeze and productive cough for two days. Inhalers giving less relief than usual. Long smoking history.",
		Medications:  []string{"Salbutamol", "Tiotropium", "Beclometasone", "Prednisolone", "Amoxicillin"},
		History:      []string{"COPD", "Recurrent chest infections", "Ex-smoker"},
		Dispatch:     "{age} year old {gender}, short of breath with audible wheeze. Speaking in short sentences. Known COPD.",
		GPLetterTypes: []string{
			"Respiratory clinic letter",
			"Rescue pack instructions",
		},
	},
	{
		Condition:    "Asthma",
		AgeRange:     AgeRange{Min: 18, Max: 50},
		Presentation: "Tight chest and wheeze after a chest cold. Using the blue inhaler several times a day.",
		Medications:  []string{"Salbutamol", "Beclometasone"},
		History:      []string{"Asthma", "Hay fever"},
		Dispatch:     "{age} year old {gender}, asthma attack, inhaler not helping as expected. Breathing fast.",
	},
	{
		Condition:    "Type 2 Diabetes",
		AgeRange:     AgeRange{Min: 50, Max: 80},
		Presentation: "Generally unwell, tired and thirsty. Family report confusion this morning and a missed breakfast.",
		Medications:  []string{"Metformin", "Gliclazide", "Ramipril", "Atorvastatin"},
		History:      []string{"Type 2 diabetes", "High blood pressure", "High cholesterol"},
		Dispatch:     "{age} year old {gender}, diabetic, acting confused. Family on scene.",
		GPLetterTypes: []string{
			"Diabetic annual review",
		},
	},
	{
		Condition:    "Type 1 Diabetes",
		AgeRange:     AgeRange{Min: 18, Max: 45},
		Presentation: "Found drowsy and sweaty by a flatmate. Slurred speech, improved slightly after a sugary drink.",
		Medications:  []string{"Insulin glargine"},
		History:      []string{"Type 1 diabetes"},
		Dispatch:     "{age} year old {gender}, known diabetic, drowsy and not making sense. Possible hypo.",
	},
	{
		Condition:    "Epilepsy",
		AgeRange:     AgeRange{Min: 18, Max: 60},
		Presentation: "Witnessed seizure lasting around two minutes, now drowsy but rousable. Bitten tongue.",
		Medications:  []string{"Levetiracetam", "Lamotrigine"},
		History:      []string{"Epilepsy"},
		Dispatch:     "{age} year old {gender}, fitting, now stopped. Breathing normally. Known epileptic.",
		GPLetterTypes: []string{
			"Neurology clinic letter",
		},
	},
	{
		Condition:    "Parkinson's Disease",
		AgeRange:     AgeRange{Min: 65, Max: 90},
		Presentation: "Fall in the bathroom, no head injury. Increasing stiffness and slowness over recent months. Tremor at rest.",
		Medications:  []string{"Co-careldopa", "Ropinirole", "Amitriptyline"},
		History:      []string{"Parkinson's disease", "Depression", "Previous falls"},
		Dispatch:     "{age} year old {gender}, fallen, unable to get up. No loss of consciousness. Carer on scene.",
		GPLetterTypes: []string{
			"Movement disorder clinic letter",
			"Falls team referral",
		},
	},
	{
		Condition:    "Atrial Fibrillation",
		AgeRange:     AgeRange{Min: 70, Max: 90},
		Presentation: "Palpitations and light-headedness since this morning. Pulse feels irregular to the patient.",
		Medications:  []string{"Apixaban", "Bisoprolol", "Digoxin"},
		History:      []string{"Atrial fibrillation", "High blood pressure"},
		Dispatch:     "{age} year old {gender}, fluttering in the chest and feeling faint. Known irregular heartbeat.",
	},
	{
		Condition:    "Ischaemic Heart Disease",
		AgeRange:     AgeRange{Min: 60, Max: 85},
		Presentation: "Central chest tightness on exertion, relieved by rest and spray. Two episodes today.",
		Medications:  []string{"Aspirin", "Atorvastatin", "Atenolol", "Glyceryl trinitrate", "Isosorbide mononitrate"},
		History:      []string{"Angina", "High cholesterol", "High blood pressure"},
		Dispatch:     "{age} year old {gender}, chest pain on and off today, eased with GTN spray. Currently pain free.",
		GPLetterTypes: []string{
			"Cardiology clinic follow-up",
		},
	},
	{
		Condition:    "Rheumatoid Arthritis",
		AgeRange:     AgeRange{Min: 45, Max: 75},
		Presentation: "Flare of joint pain and swelling in both hands. Struggling with stairs and feeling feverish.",
		Medications:  []string{"Methotrexate", "Folic acid", "Naproxen", "Omeprazole", "Prednisolone"},
		History:      []string{"Rheumatoid arthritis", "Acid reflux"},
		Dispatch:     "{age} year old {gender}, severe joint pain, unable to cope at home. No injury.",
		GPLetterTypes: []string{
			"Rheumatology clinic letter",
			"Shared care monitoring record",
		},
	},
	{
		Condition:    "Stroke / TIA",
		AgeRange:     AgeRange{Min: 65, Max: 90},
		Presentation: "Episode of facial droop and slurred speech lasting twenty minutes this morning, now resolved.",
		Medications:  []string{"Clopidogrel", "Atorvastatin", "Amlodipine", "Lisinopril"},
		History:      []string{"Previous TIA", "High blood pressure", "High cholesterol"},
		Dispatch:     "{age} year old {gender}, face drooping and speech slurred earlier, now back to normal. FAST negative on arrival.",
	},
	{
		Condition:    "Bipolar Disorder",
		AgeRange:     AgeRange{Min: 30, Max: 60},
		Presentation: "Several days of poor sleep and racing thoughts. Family concerned about erratic behaviour and missed doses.",
		Medications:  []string{"Lithium", "Sertraline"},
		History:      []string{"Bipolar disorder", "Anxiety"},
		Dispatch:     "{age} year old {gender}, behaving out of character, family requesting assessment. No violence reported.",
	},
	{
		Condition:    "Dementia",
		AgeRange:     AgeRange{Min: 75, Max: 95},
		Presentation: "Increasing confusion over a week, wandering at night. Carer reports reduced eating and drinking.",
		Medications:  []string{"Donepezil", "Sertraline", "Alendronic acid"},
		History:      []string{"Alzheimer's disease", "Osteoporosis", "Depression"},
		Dispatch:     "{age} year old {gender}, confused and agitated, carer unable to settle them. No injury.",
		GPLetterTypes: []string{
			"Memory clinic letter",
		},
	},
	{
		Condition:    "Hypothyroidism",
		AgeRange:     AgeRange{Min: 40, Max: 70},
		Presentation: "Months of tiredness, weight gain and feeling cold. Recently stopped collecting prescriptions.",
		Medications:  []string{"Levothyroxine", "Amlodipine"},
		History:      []string{"Underactive thyroid", "High blood pressure"},
		Dispatch:     "{age} year old {gender}, generally unwell and exhausted, GP unavailable. Non-urgent presentation.",
	},
}

var byName map[string]*Template

func init() {
	byName = make(map[string]*Template, len(templates))
	for i := range templates {
		byName[templates[i].Condition] = &templates[i]
	}
}

// All returns a copy of every template in the bank.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// Get returns the template for the given condition name.
func Get(name string) (Template, error) {
	t, ok := byName[name]
	if !ok {
		return Template{}, fmt.Errorf("no template for condition %q", name)
	}
	return *t, nil
}

// Count returns the number of curated templates.
func Count() int {
	return len(templates)
}

// Names returns every condition name in bank order.
func Names() []string {
	out := make([]string, len(templates))
	for i := range templates {
		out[i] = templates[i].Condition
	}
	return out
}
