package exercises

// catalog is the built-in exercise library, grouped by category in display order.
var catalog = []Exercise{
	{
		ID:          "chest-1",
		Title:       "Flexão clássica",
		Category:    "Peito",
		VideoURL:    "/classic-push-up-exercise.jpg",
		Description: "Exercício fundamental para desenvolver o peitoral, tríceps e core.",
		Steps: []string{
			"Posicione-se em prancha com mãos na largura dos ombros",
			"Mantenha o corpo em linha reta da cabeça aos pés",
			"Desça o peito até próximo ao chão",
			"Empurre para cima até estender os braços",
		},
		CommonErrors:  []string{"Deixar o quadril cair", "Não descer completamente", "Cabeça olhando para frente"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Peitoral maior", "Tríceps", "Core"},
	},
	{
		ID:          "chest-2",
		Title:       "Flexão diamante",
		Category:    "Peito",
		VideoURL:    "/diamond-push-up-exercise.jpg",
		Description: "Variação que enfatiza mais o tríceps e a parte interna do peitoral.",
		Steps: []string{
			"Posicione as mãos próximas formando um diamante com os dedos",
			"Mantenha os cotovelos próximos ao corpo",
			"Desça controladamente",
			"Empurre para cima mantendo tensão no tríceps",
		},
		CommonErrors:  []string{"Abrir muito os cotovelos", "Perder tensão no core"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Tríceps", "Peitoral interno"},
	},
	{
		ID:          "chest-3",
		Title:       "Flexão ampla",
		Category:    "Peito",
		VideoURL:    "/wide-push-up-exercise.jpg",
		Description: "Variação com mãos mais afastadas para enfatizar o peitoral.",
		Steps: []string{
			"Posicione as mãos mais largas que os ombros",
			"Mantenha o core contraído",
			"Desça até o peitoral estar próximo ao chão",
			"Empurre explosivamente para cima",
		},
		CommonErrors:  []string{"Mãos muito abertas", "Perder estabilidade"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Peitoral maior", "Deltoides anterior"},
	},
	{
		ID:          "back-1",
		Title:       "Superman",
		Category:    "Costas",
		VideoURL:    "/superman-exercise-back.jpg",
		Description: "Fortalece toda a cadeia posterior do corpo.",
		Steps: []string{
			"Deite-se de bruços no chão",
			"Estenda braços à frente",
			"Levante simultaneamente braços e pernas",
			"Mantenha por 2-3 segundos e desça",
		},
		CommonErrors:  []string{"Arquear demais a lombar", "Tensão no pescoço"},
		Breathing:     "Expire ao levantar, inspire ao descer",
		TargetMuscles: []string{"Eretores da coluna", "Glúteos", "Trapézio"},
	},
	{
		ID:          "back-2",
		Title:       "Prancha invertida",
		Category:    "Costas",
		VideoURL:    "/reverse-plank-exercise.jpg",
		Description: "Trabalha posterior de ombros, lombar e glúteos.",
		Steps: []string{
			"Sente-se com pernas estendidas",
			"Apoie as mãos atrás dos quadris",
			"Levante o quadril formando linha reta",
			"Mantenha a posição",
		},
		CommonErrors:  []string{"Quadril muito baixo", "Ombros tensos"},
		Breathing:     "Respiração contínua e controlada",
		TargetMuscles: []string{"Deltoides posterior", "Lombar", "Glúteos"},
	},
	{
		ID:          "back-3",
		Title:       "Ponte de ombros com uma perna",
		Category:    "Costas",
		VideoURL:    "/single-leg-bridge-exercise.jpg",
		Description: "Fortalece glúteos, lombar e isquiotibiais.",
		Steps: []string{
			"Deite de costas com joelhos flexionados",
			"Estenda uma perna",
			"Levante o quadril com força dos glúteos",
			"Desça controladamente",
		},
		CommonErrors:  []string{"Usar lombar em vez de glúteos", "Perder alinhamento"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Glúteos", "Lombar", "Isquiotibiais"},
	},
	{
		ID:          "shoulders-1",
		Title:       "Pike push-up",
		Category:    "Ombros",
		VideoURL:    "/pike-push-up-exercise.jpg",
		Description: "Trabalha intensamente os deltoides.",
		Steps: []string{
			"Comece em posição de V invertido",
			"Dobre os cotovelos descendo a cabeça",
			"Mantenha quadril elevado",
			"Empurre para cima",
		},
		CommonErrors:  []string{"Perder posição do quadril", "Cotovelos muito abertos"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Deltoides", "Tríceps"},
	},
	{
		ID:          "shoulders-2",
		Title:       "Flexão hindu",
		Category:    "Ombros",
		VideoURL:    "/hindu-push-up-exercise.jpg",
		Description: "Movimento fluido que trabalha ombros e alongamento.",
		Steps: []string{
			"Inicie em V invertido",
			"Desça em arco passando próximo ao chão",
			"Finalize olhando para cima",
			"Retorne pelo mesmo caminho",
		},
		CommonErrors:  []string{"Movimento muito rápido", "Perder fluidez"},
		Breathing:     "Coordenar com o movimento",
		TargetMuscles: []string{"Deltoides", "Peitoral", "Core"},
	},
	{
		ID:          "shoulders-3",
		Title:       "Elevação lateral isométrica",
		Category:    "Ombros",
		VideoURL:    "/lateral-raise-isometric.jpg",
		Description: "Mantém tensão constante no deltoide lateral.",
		Steps: []string{
			"Fique em pé com braços ao lado",
			"Eleve os braços até altura dos ombros",
			"Mantenha a posição isométrica",
			"Desça controladamente",
		},
		CommonErrors:  []string{"Elevar ombros junto", "Balançar o corpo"},
		Breathing:     "Respiração contínua",
		TargetMuscles: []string{"Deltoide lateral"},
	},
	{
		ID:          "triceps-1",
		Title:       "Flexão diamante",
		Category:    "Tríceps",
		VideoURL:    "/diamond-push-up-triceps.jpg",
		Description: "Melhor exercício de peso corporal para tríceps.",
		Steps: []string{
			"Mãos próximas formando diamante",
			"Cotovelos colados ao corpo",
			"Desça até o peito tocar as mãos",
			"Empurre com força do tríceps",
		},
		CommonErrors:  []string{"Abrir cotovelos", "Não descer completamente"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Tríceps", "Peitoral interno"},
	},
	{
		ID:          "triceps-2",
		Title:       "Dips no chão",
		Category:    "Tríceps",
		VideoURL:    "/floor-dips-exercise.jpg",
		Description: "Isolamento do tríceps usando o chão.",
		Steps: []string{
			"Sente com mãos apoiadas atrás",
			"Estenda as pernas",
			"Flexione os cotovelos descendo o quadril",
			"Empurre para cima",
		},
		CommonErrors:  []string{"Usar muito os ombros", "Descer pouco"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Tríceps"},
	},
	{
		ID:          "triceps-3",
		Title:       "Dips entre cadeiras",
		Category:    "Tríceps",
		VideoURL:    "/bench-dips-exercise.jpg",
		Description: "Versão mais desafiadora dos dips.",
		Steps: []string{
			"Use duas cadeiras ou banco",
			"Apoie as mãos atrás",
			"Pés elevados ou no chão",
			"Flexione até 90 graus e volta",
		},
		CommonErrors:  []string{"Descer demais", "Ombros tensos"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Tríceps", "Peitoral inferior"},
	},
	{
		ID:          "biceps-1",
		Title:       "Flexão invertida isométrica",
		Category:    "Bíceps",
		VideoURL:    "/isometric-biceps-hold.jpg",
		Description: "Mantém tensão no bíceps sem equipamento.",
		Steps: []string{
			"Posição de flexão invertida",
			"Flexione os braços a 90 graus",
			"Mantenha a posição",
			"Foque na contração do bíceps",
		},
		CommonErrors:  []string{"Perder posição", "Tensionar demais o pescoço"},
		Breathing:     "Respiração contínua",
		TargetMuscles: []string{"Bíceps", "Core"},
	},
	{
		ID:          "biceps-2",
		Title:       "Bíceps isométrico",
		Category:    "Bíceps",
		VideoURL:    "/biceps-self-resistance.jpg",
		Description: "Auto-resistência para trabalhar bíceps.",
		Steps: []string{
			"Use uma mão contra a outra",
			"Faça força como se levantasse peso",
			"Mantenha tensão constante",
			"Alterne os braços",
		},
		CommonErrors:  []string{"Pouca tensão", "Movimento muito rápido"},
		Breathing:     "Contínua e controlada",
		TargetMuscles: []string{"Bíceps"},
	},
	{
		ID:          "biceps-3",
		Title:       "Rosca alternada com carga livre",
		Category:    "Bíceps",
		VideoURL:    "/dumbbell-biceps-curl.jpg",
		Description: "Com halteres ou qualquer peso disponível.",
		Steps: []string{
			"Segure os pesos ao lado do corpo",
			"Flexione um braço por vez",
			"Mantenha cotovelo fixo",
			"Desça controladamente",
		},
		CommonErrors:  []string{"Balançar o corpo", "Mover o cotovelo"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Bíceps"},
	},
	{
		ID:          "abs-1",
		Title:       "Prancha padrão",
		Category:    "Abdômen",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Exercício fundamental para core.",
		Steps: []string{
			"Apoie antebraços e pontas dos pés",
			"Corpo em linha reta",
			"Contraia abdômen e glúteos",
			"Mantenha a posição",
		},
		CommonErrors:  []string{"Quadril caído", "Elevar muito o quadril"},
		Breathing:     "Respiração contínua",
		TargetMuscles: []string{"Reto abdominal", "Core completo"},
	},
	{
		ID:          "abs-2",
		Title:       "Prancha lateral",
		Category:    "Abdômen",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Trabalha oblíquos e estabilização lateral.",
		Steps: []string{
			"Apoie em um antebraço",
			"Corpo em linha reta lateral",
			"Contraia o oblíquo",
			"Mantenha quadril elevado",
		},
		CommonErrors:  []string{"Quadril caído", "Rotação do tronco"},
		Breathing:     "Respiração contínua",
		TargetMuscles: []string{"Oblíquos", "Core lateral"},
	},
	{
		ID:          "abs-3",
		Title:       "Elevação de pernas deitado",
		Category:    "Abdômen",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Foca na parte inferior do abdômen.",
		Steps: []string{
			"Deite de costas com pernas estendidas",
			"Mãos sob o quadril",
			"Eleve as pernas até 90 graus",
			"Desça sem tocar no chão",
		},
		CommonErrors:  []string{"Arquear lombar", "Usar impulso"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Abdômen inferior"},
	},
	{
		ID:          "legs-1",
		Title:       "Agachamento livre",
		Category:    "Pernas",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Rei dos exercícios para pernas.",
		Steps: []string{
			"Pés na largura dos ombros",
			"Desça como se fosse sentar",
			"Joelhos alinhados com os pés",
			"Empurre pelos calcanhares",
		},
		CommonErrors:  []string{"Joelhos para dentro", "Não descer suficiente"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Quadríceps", "Glúteos"},
	},
	{
		ID:          "legs-2",
		Title:       "Agachamento búlgaro",
		Category:    "Pernas",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Unilateral para maior ativação e equilíbrio.",
		Steps: []string{
			"Apoie um pé atrás elevado",
			"Desça flexionando a perna da frente",
			"Mantenha tronco ereto",
			"Empurre para cima",
		},
		CommonErrors:  []string{"Joelho ultrapassar muito", "Perder equilíbrio"},
		Breathing:     "Inspire na descida, expire na subida",
		TargetMuscles: []string{"Quadríceps", "Glúteos"},
	},
	{
		ID:          "legs-3",
		Title:       "Ponte de glúteo",
		Category:    "Pernas",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Isolamento e fortalecimento dos glúteos.",
		Steps: []string{
			"Deite de costas, joelhos flexionados",
			"Pés próximos aos glúteos",
			"Eleve o quadril contraindo glúteos",
			"Desça controladamente",
		},
		CommonErrors:  []string{"Usar lombar", "Não contrair glúteos"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Glúteos", "Isquiotibiais"},
	},
	{
		ID:          "posterior-1",
		Title:       "Ponte com pernas esticadas",
		Category:    "Posterior",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Enfatiza isquiotibiais.",
		Steps: []string{
			"Deite de costas, pernas semi-estendidas",
			"Apoie calcanhares",
			"Eleve quadril contraindo posterior",
			"Desça sem tocar no chão",
		},
		CommonErrors:  []string{"Dobrar muito os joelhos", "Perder contração"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Isquiotibiais", "Glúteos"},
	},
	{
		ID:          "posterior-2",
		Title:       "Elevação de quadril com uma perna",
		Category:    "Posterior",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Unilateral para máxima ativação.",
		Steps: []string{
			"Deite de costas",
			"Uma perna flexionada, outra estendida",
			"Eleve quadril com força do glúteo",
			"Mantenha no topo e desça",
		},
		CommonErrors:  []string{"Rotação do quadril", "Usar impulso"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Glúteos", "Isquiotibiais"},
	},
	{
		ID:          "posterior-3",
		Title:       "Elevação de panturrilha em uma perna",
		Category:    "Posterior",
		VideoURL:    "/placeholder.svg?height=400&width=600",
		Description: "Fortalece panturrilhas de forma intensa.",
		Steps: []string{
			"Apoie-se em uma perna",
			"Eleve-se na ponta do pé",
			"Mantenha equilíbrio",
			"Desça até alongar",
		},
		CommonErrors:  []string{"Não subir completamente", "Balançar"},
		Breathing:     "Expire ao subir, inspire ao descer",
		TargetMuscles: []string{"Gastrocnêmio", "Sóleo"},
	},
}
