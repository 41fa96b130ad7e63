package questions

// Generic distractor pools used when a builder's own alternatives run
// short. Kept as data so the synthesis algorithm stays generic over
// content domain.

var classFallbackPool = []string{
	"Beta-blocker",
	"ACE inhibitor",
	"Angiotensin receptor blocker",
	"Statin",
	"Calcium channel blocker",
	"Proton pump inhibitor",
	"Loop diuretic",
	"Anticoagulant",
	"Corticosteroid",
	"NSAID",
	"Opioid analgesic",
	"Anticonvulsant",
}

var drugFallbackPool = []string{
	"Paracetamol",
	"Omeprazole",
	"Amlodipine",
	"Simvastatin",
	"Sertraline",
	"Doxycycline",
	"Codeine",
	"Levothyroxine",
}

var indicationFallbackPool = []string{
	"High blood pressure",
	"High cholesterol",
	"Pain relief",
	"Acid reflux and stomach protection",
	"Bacterial infection",
	"Depression and anxiety",
	"Type 2 diabetes",
	"Epilepsy",
}

var generalFallbackPool = []string{
	"No additional precautions required",
	"Only when symptoms are severe",
	"At the pharmacist's discretion",
	"None of these",
}
