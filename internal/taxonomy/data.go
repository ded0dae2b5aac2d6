package taxonomy

// Categories and specialties of the TherapyCare directory, in display order.
var categories = []Category{
	{
		Slug:        "psychologie",
		Name:        "Psychologie & Psychothérapie",
		Description: "Thérapies mentales, émotionnelles, troubles anxieux, soutien psychologique",
		Specialties: []string{
			"Psychologue",
			"Psychologue Clinicien",
			"Psychopraticien",
			"Psychothérapeute",
			"Psychologue-Psychothérapeute",
			"Psychanalyste",
			"Neuropsychologue",
			"Thérapeute de couple",
			"Thérapeute familial",
			"Thérapeute systémique",
			"Thérapeute du sommeil",
			"Psychomotricien",
			"Thérapeute ICV",
			"Somatic Experiencing",
			"Thérapie ACT",
			"Thérapie narrative",
			"Analyse transactionnelle",
			"Thérapie transgénérationnelle",
			"Thérapie sensorielle",
			"Thérapie désensibilisation phobies",
			"Constellations familiales",
			"Hypnose spirituelle",
			"Thérapie spirituelle",
			"Thérapie holistique",
			"Sophro-analyse",
		},
	},
	{
		Slug:        "hypnose",
		Name:        "Hypnose & Thérapies brèves",
		Description: "Interventions rapides, troubles ciblés, gestion du stress",
		Specialties: []string{
			"Hypnothérapeute",
			"Praticien en Hypnose",
			"Praticien EMDR",
			"Praticien EFT",
			"Praticien en Thérapies Brèves",
			"PNL avancée",
			"Thérapie brève intégrative",
			"Rebirth / Respiration consciente",
			"Respiration holotropique",
			"Cohérence cardiaque",
		},
	},
	{
		Slug:        "medecines-douces",
		Name:        "Médecines douces & Soins naturels",
		Description: "Approches naturelles, prévention, santé globale",
		Specialties: []string{
			"Naturopathe",
			"Phytothérapeute",
			"Aromathérapeute",
			"Aromatologue",
			"Iridologue",
			"Micronutritionniste",
			"Nutritionniste holistique",
			"Naturopathe enfants",
			"Naturopathe sportifs",
			"Conseiller anti-inflammatoire",
			"Conseiller compléments alimentaires",
			"Conseiller en phytothérapie",
		},
	},
	{
		Slug:        "energetique",
		Name:        "Énergétique & Thérapies vibratoires",
		Description: "Soins par l'énergie, harmonisation, rééquilibrage",
		Specialties: []string{
			"Praticien Reiki",
			"Maître Reiki",
			"Reiki Usui",
			"Reiki Karuna",
			"Reiki Shamballa",
			"Praticien LaHoChi",
			"Bioénergéticien",
			"Psycho-Énergéticien",
			"Énergéticien quantique",
			"Magnétiseur",
			"Guérisseur énergétique",
			"Thérapeute essénien",
			"Thérapeute angélique",
			"Lithothérapeute",
			"Chromothérapeute",
			"Guérison prânique",
			"ThetaHealing",
			"Soins akashiques",
			"Passeurs d'âmes",
			"Praticien en Énergétique",
			"Praticien en Énergétique Chinoise",
		},
	},
	{
		Slug:        "medecine-chinoise",
		Name:        "Médecine chinoise & pratiques asiatiques",
		Description: "Equilibre des énergies, méridiens, traditions ancestrales",
		Specialties: []string{
			"Praticien en Médecine Chinoise",
			"Acupuncteur",
			"Praticien Tuina",
			"Cupping therapy (ventouses)",
			"Praticien Shiatsu",
			"Amma assis",
			"Qi Gong thérapeutique",
			"Tai Chi thérapeutique",
		},
	},
	{
		Slug:        "massages",
		Name:        "Massages & Thérapies corporelles",
		Description: "Bien-être, relâchement musculaire, détente physique",
		Specialties: []string{
			"Praticien en Massage Bien-être",
			"Massothérapeute",
			"Fasciathérapeute",
			"Praticien en Drainage Lymphatique",
			"Drainage lymphatique Renata França",
			"Stretching thérapeutique",
			"Ostéopathe",
			"Étiopathe",
			"Chiropracteur",
			"Thérapie cranio-sacrée",
			"Bowen",
			"Posturologue",
			"Podologue postural",
			"Gym douce & mobilité",
			"Pilates thérapeutique",
		},
	},
	{
		Slug:        "yoga",
		Name:        "Yoga, respiration & pratiques corps-esprit",
		Description: "Alignement, mouvement conscient, respiration",
		Specialties: []string{
			"Professeur de Yoga",
			"Yoga thérapeute",
			"Instructeur Pilates",
			"Coach Breathwork",
			"Instructeur méditation",
			"Méthode Feldenkrais",
			"Méthode Alexander",
			"Méthode Wim Hof",
		},
	},
	{
		Slug:        "sonotherapie",
		Name:        "Bien-être sonore & vibrations",
		Description: "Sons, fréquences, relaxation profonde",
		Specialties: []string{
			"Sonothérapeute",
			"Praticien bols tibétains",
			"Praticien diapasons thérapeutiques",
			"Tambours sacrés",
		},
	},
	{
		Slug:        "coaching-personnel",
		Name:        "Coaching personnel",
		Description: "Accompagnement de vie, motivation, mindset",
		Specialties: []string{
			"Coach de Vie",
			"Coach en Bien-être",
			"Coach en Développement Personnel",
			"Coach Professionnel Certifié",
			"Coach confiance en soi",
			"Coach gestion du stress",
			"Coach hypersensibilité",
			"Coach relations amoureuses",
			"Coach séparation/divorce",
			"Coach en image",
			"Coach Relooking",
			"Coach organisation & gestion du temps",
			"Coach leadership",
			"Coach parentalité positive",
			"Coach parental et familial",
			"Coach scolaire",
			"Coach mental sportif",
		},
	},
	{
		Slug:        "coaching-professionnel",
		Name:        "Coaching professionnel & business",
		Description: "Performance, reconversion, objectifs",
		Specialties: []string{
			"Coach business",
			"Coach réorientation professionnelle",
			"Coach reconversion",
			"Coach finances personnelles",
		},
	},
	{
		Slug:        "nutrition",
		Name:        "Nutrition & alimentation",
		Description: "Équilibre alimentaire, perte de poids",
		Specialties: []string{
			"Diététicien-Nutritionniste",
			"Conseiller en Nutrition",
			"Coach Nutritionnel",
			"Coach perte de poids",
			"Coach rééquilibrage alimentaire",
			"Alimentation intuitive",
			"Praticien jeûne & détox",
		},
	},
	{
		Slug:        "maternite-famille",
		Name:        "Accompagnement maternité / famille",
		Description: "Périnatalité, parentalité, accompagnement familial",
		Specialties: []string{
			"Doula",
			"Accompagnant périnatal",
			"Coach parental et familial",
			"Coach parentalité positive",
			"Graphothérapeute",
		},
	},
}

type description struct {
	Short       string
	Full        string
	Indications []string
	Methods     []string
}

// Detail entries for the most consulted specialties. Specialties without an
// entry resolve with name and category only.
var descriptions = map[string]description{
	"Psychologue": {
		Short:       "Professionnel diplômé spécialisé dans l'analyse du comportement humain et des émotions",
		Full:        "Le psychologue est un professionnel diplômé d'un Master universitaire en psychologie. Il est formé à l'analyse du comportement humain, des émotions, des mécanismes psychiques et des stratégies d'adaptation. À travers des entretiens, tests et bilans psychologiques, il identifie les difficultés (anxiété, dépression, phobies, burn-out, troubles du comportement...). Il accompagne ensuite la personne avec des outils adaptés pour améliorer sa santé mentale et sa qualité de vie.",
		Indications: []string{"Anxiété", "Dépression", "Phobies", "Burn-out", "Troubles du comportement"},
		Methods:     []string{"Entretiens cliniques", "Tests psychologiques", "Bilans psychologiques", "Thérapies comportementales et cognitives"},
	},
	"Psychologue Clinicien": {
		Short:       "Spécialiste de la souffrance psychique profonde, formé à la psychopathologie",
		Full:        "Plus spécialisé, le psychologue clinicien travaille sur la souffrance psychique profonde. Formé à la psychopathologie, il intervient dans les troubles complexes : traumas, angoisses, dépression sévère, troubles de l'attachement, difficultés relationnelles. Il utilise des méthodes thérapeutiques spécifiques et propose un cadre rassurant structuré pour accompagner les patients dans la transformation de leurs difficultés.",
		Indications: []string{"Traumas", "Angoisses", "Dépression sévère", "Troubles de l'attachement", "Difficultés relationnelles"},
		Methods:     []string{"Psychothérapie clinique", "Psychopathologie", "Cadre thérapeutique structuré"},
	},
	"Psychopraticien": {
		Short:       "Accompagne par des techniques de psychothérapie reconnues",
		Full:        "Le psychopraticien accompagne les personnes à travers des techniques de psychothérapie reconnues (humaniste, analytique, gestalt, intégrative...). Il aide à comprendre les blocages émotionnels, les schémas répétitifs, les traumatismes et les conflits internes. Sa mission est de permettre à chacun d'exprimer ses émotions, de retrouver ses ressources internes et d'avancer avec une meilleure connaissance de soi.",
		Indications: []string{"Blocages émotionnels", "Schémas répétitifs", "Traumatismes", "Conflits internes"},
		Methods:     []string{"Approche humaniste", "Gestalt", "Thérapie analytique", "Thérapie intégrative"},
	},
	"Psychothérapeute": {
		Short:       "Traitement des troubles émotionnels et comportementaux en profondeur",
		Full:        "Professionnel du soin psychique, il utilise des méthodes validées scientifiquement (TCC, approche humaniste, systémie, analyse...). Son rôle est de traiter les troubles émotionnels, comportementaux ou relationnels en profondeur. Il accompagne la personne dans un processus structuré et progressif, visant à transformer durablement ses pensées, ses émotions et ses comportements.",
		Indications: []string{"Troubles émotionnels", "Troubles comportementaux", "Troubles relationnels"},
		Methods:     []string{"TCC", "Approche humaniste", "Systémie", "Analyse"},
	},
	"Psychologue-Psychothérapeute": {
		Short:       "Double expertise : diagnostic scientifique et traitement thérapeutique",
		Full:        "Il cumule la rigueur scientifique du psychologue et l'expertise thérapeutique du psychothérapeute. Cette double formation lui permet de proposer un diagnostic précis et un traitement thérapeutique complet. Il accompagne les troubles variés : anxiété, trauma, phobies, dépression, troubles du comportement, estime de soi.",
		Indications: []string{"Anxiété", "Trauma", "Phobies", "Dépression", "Troubles du comportement", "Estime de soi"},
		Methods:     []string{"Diagnostic psychologique", "Psychothérapie", "Approches intégratives"},
	},
	"Hypnothérapeute": {
		Short:       "Utilise l'état de conscience modifiée pour reprogrammer les automatismes",
		Full:        "L'hypnothérapeute utilise l'état de conscience modifiée pour accéder aux ressources inconscientes de la personne. Il accompagne les problématiques d'arrêt du tabac, de gestion du poids, de stress, de phobies et de douleurs chroniques. En quelques séances, il aide à reprogrammer les automatismes qui maintiennent les blocages.",
		Indications: []string{"Arrêt du tabac", "Gestion du poids", "Stress", "Phobies", "Douleurs chroniques"},
		Methods:     []string{"Hypnose ericksonienne", "Suggestions thérapeutiques", "Visualisation"},
	},
	"Naturopathe": {
		Short:       "Approche globale de la santé par des moyens naturels",
		Full:        "Le naturopathe considère la personne dans sa globalité et cherche à renforcer les capacités d'auto-guérison de l'organisme. Par l'alimentation, la phytothérapie, la gestion du stress et l'hygiène de vie, il accompagne la prévention et le retour à l'équilibre. Il établit un bilan de vitalité et propose un programme d'hygiène de vie personnalisé.",
		Indications: []string{"Fatigue chronique", "Troubles digestifs", "Stress", "Troubles du sommeil"},
		Methods:     []string{"Bilan de vitalité", "Nutrition", "Phytothérapie", "Hygiène de vie"},
	},
	"Praticien Reiki": {
		Short:       "Harmonisation énergétique par imposition des mains",
		Full:        "Le praticien Reiki canalise l'énergie universelle par imposition des mains pour harmoniser les centres énergétiques. La séance induit une relaxation profonde et soutient les processus naturels d'équilibrage du corps et de l'esprit. Complémentaire, jamais substitutif d'un suivi médical.",
		Indications: []string{"Stress", "Fatigue", "Tensions émotionnelles", "Troubles du sommeil"},
		Methods:     []string{"Imposition des mains", "Harmonisation des chakras", "Relaxation profonde"},
	},
	"Ostéopathe": {
		Short:       "Thérapie manuelle des troubles fonctionnels du corps",
		Full:        "L'ostéopathe traite par manipulations manuelles les restrictions de mobilité des tissus du corps. Il intervient sur les douleurs articulaires et musculaires, les troubles digestifs fonctionnels et les suites de traumatismes. Son approche considère le corps comme une unité fonctionnelle.",
		Indications: []string{"Douleurs dorsales", "Troubles musculo-squelettiques", "Troubles digestifs fonctionnels"},
		Methods:     []string{"Manipulations structurelles", "Techniques viscérales", "Techniques crâniennes"},
	},
	"Coach de Vie": {
		Short:       "Accompagnement vers les objectifs personnels et le mieux-être",
		Full:        "Le coach de vie accompagne la personne dans la clarification et l'atteinte de ses objectifs personnels. Par un questionnement structuré et des plans d'action concrets, il soutient la motivation, la confiance en soi et les transitions de vie.",
		Indications: []string{"Transitions de vie", "Manque de motivation", "Confiance en soi", "Équilibre vie pro/perso"},
		Methods:     []string{"Questionnement structuré", "Plans d'action", "Suivi d'objectifs"},
	},
	"Sophro-analyse": {
		Short:       "Exploration des mémoires émotionnelles en état de relaxation",
		Full:        "La sophro-analyse combine la relaxation sophronique et l'exploration analytique des mémoires émotionnelles. En état de conscience modifiée, la personne revisite les empreintes émotionnelles à l'origine de ses blocages pour les transformer.",
		Indications: []string{"Blocages émotionnels", "Traumatismes anciens", "Schémas répétitifs"},
		Methods:     []string{"Relaxation sophronique", "Exploration analytique", "Libération émotionnelle"},
	},
	"Diététicien-Nutritionniste": {
		Short:       "Professionnel de santé expert de l'équilibre alimentaire",
		Full:        "Le diététicien-nutritionniste est un professionnel de santé diplômé qui établit des bilans nutritionnels et des programmes alimentaires personnalisés. Il accompagne la perte de poids, les pathologies à composante alimentaire et la nutrition sportive.",
		Indications: []string{"Surpoids", "Diabète", "Troubles du comportement alimentaire", "Nutrition sportive"},
		Methods:     []string{"Bilan nutritionnel", "Programme alimentaire personnalisé", "Suivi diététique"},
	},
}
