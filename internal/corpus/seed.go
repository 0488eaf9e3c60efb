package corpus

// SlotVocabularies returns the fixed vocabularies for template slots.
func SlotVocabularies() map[string][]string {
	return map[string][]string{
		"nome":   {"Miguel", "Jojo", "Catarina", "Diogo", "Inês", "Barbeitos", "Raquel", "Gustavo"},
		"bebida": {"cerveja", "vinho", "caipirinha", "champanhe"},
		"cidade": {"Porto", "Gaia", "Matosinhos"},
		"hora":   {"21h00", "22h00", "meia-noite"},
	}
}

// SeedSets returns the hand-authored per-topic template sets for the
// New Year's Eve party assistant.
func SeedSets() []TemplateSet {
	return []TemplateSet{
		{
			Topic: "festa",
			Questions: []string{
				"onde é a festa", "onde vai ser", "qual é o local", "morada da festa",
				"é no porto", "fica longe de gaia", "qual o sítio",
			},
			Answers: []string{
				"A festa é em Casa do Miguel, no Porto 🎆",
				"Casa do Miguel, Porto — o epicentro da diversão 😎",
				"No Porto, em casa do Miguel. Não tem como falhar! 🏠",
			},
			Synonyms: [][2]string{{"sítio", "sitio"}, {"festa", "celebração"}},
		},
		{
			Topic: "horario",
			Questions: []string{
				"a que horas começa", "quando começa a festa", "qual é a hora", "quando é",
			},
			Answers: []string{
				"Começa às 21h00 e vai até ao nascer do sol 🌅",
				"A partir das 21h00. Leva energia, vai ser longo! 💃🕺",
				"21h00 em ponto — o Diácono é pontual ⏰",
			},
		},
		{
			Topic: "comida",
			Questions: []string{
				"vai haver comida", "há jantar", "o que vamos comer", "que bebidas há",
				"há cerveja", "vai haver vinho", "tem caipirinha", "há champanhe",
			},
			Answers: []string{
				"Vai haver comida e bebida em abundância 🍽️🥂",
				"Cerveja fria, vinho bom e caipirinhas — serviço completo 🍹",
				"Champanhe já está no gelo. Brinde garantido 🍾",
				"Há de tudo um pouco — confia no Diácono 😇",
			},
			Synonyms: [][2]string{{"há", "vai haver"}},
		},
		{
			Topic: "musica",
			Questions: []string{
				"vai haver música", "há dj", "quem é o dj", "vai dar para dançar",
				"vai ter karaoke", "posso pedir músicas",
			},
			Answers: []string{
				"DJ confirmado — o chão vai tremer 💃🕺",
				"Sim, e dá para pedidos (com moderação 😄) 🎧",
				"Karaoke depois da meia-noite… por tua conta e risco 🎤",
			},
			Synonyms: [][2]string{{"música", "musica"}},
		},
		{
			Topic: "wifi",
			Questions: []string{
				"qual é o wifi", "qual a senha do wifi", "qual a rede wi fi", "senha da internet",
			},
			Answers: []string{
				"Wi-Fi: CasaDoMiguel2025 📶",
				"A senha do Wi-Fi é CasaDoMiguel2025 — usa com juízo 😉",
				"Rede: CasaDoMiguel2025. Palavra-passe: diversão 🎉",
			},
		},
		{
			Topic: "roupa",
			Questions: []string{
				"qual é o dress code", "o que vestir", "que roupa devo levar",
				"há tema de roupa", "qual é a cor do ano",
			},
			Answers: []string{
				"Dress code: casual elegante ✨ e a cor é amarelo 💛",
				"Vem bonito e confortável; amarelo dá sorte 💛",
				"Brilha com amarelo — combina com o brinde 🎇",
			},
		},
		{
			Topic: "logistica",
			Questions: []string{
				"há estacionamento", "posso levar alguém", "dá para uber", "há metro perto",
				"o que devo levar", "preciso levar algo", "levo sobremesa", "querem que leve gelo",
			},
			Answers: []string{
				"Há lugares nas ruas próximas e Uber funciona bem 🚗",
				"Podes levar companhia — quanto mais almas, melhor 🎉",
				"Gelo e copos são sempre bem-vindos 🧊🥤",
				"Traz o teu melhor espírito e, se quiseres, sobremesa 😄",
			},
		},
		{
			Topic: "piadas",
			Questions: []string{
				"conta uma piada", "faz-me rir", "diz uma anedota", "uma piada do diacono",
				"diz algo engraçado", "estás com humor",
			},
			Answers: []string{
				"Quer uma piada? O Porto ganhar ao Benfica 😂",
				"Dizem que o Diácono não dança… a pista discorda 🕺",
				"O meu médico receitou gargalhadas — dose diária ilimitada 😄",
			},
		},
		{
			Topic: "futebol",
			Questions: []string{
				"hoje joga o benfica", "o benfica vai ganhar", "quem é melhor benfica ou porto",
				"benfica é o maior", "o sporting tem hipótese", "quem vai ser campeão",
				"quem vai marcar", "há jogo hoje",
			},
			Answers: []string{
				"O Benfica, claro! O maior de Portugal 🔴⚪",
				"Benfica campeão — escreve o que te digo ✍️",
				"O Porto? Só o da cidade da festa, não o do campeonato 😏",
				"Sporting tenta, mas o Glorioso manda 💪",
			},
		},
		{
			Topic: "dia_seguinte",
			Questions: []string{
				"e a ressaca amanhã", "amanhã trabalho", "cura para ressaca", "vou sofrer amanhã",
			},
			Answers: []string{
				"Hidratação, café e fé. O Diácono abençoa ☕🙏",
				"Dormir, pizza e arrependimento — ritual oficial 😅",
				"Água hoje, gratidão amanhã 💧",
			},
		},
		{
			Topic: "tempo",
			Questions: []string{
				"vai chover", "vai estar frio", "como vai estar o tempo", "vai estar calor",
				"previsão do tempo",
			},
			Answers: []string{
				"Nem chuva nem frio param esta festa 🎆",
				"Se estiver frio, a dança aquece 🔥",
				"O clima é de alegria — isso eu garanto 😎",
			},
		},
		{
			Topic: "geral",
			Questions: []string{
				"vai ser fixe", "há surpresas", "o que vai acontecer", "tens novidades",
				"fala comigo", "estás aí", "podes ajudar",
			},
			Answers: []string{
				"Vai ser épico! Mesmo o Diácono vai dançar 🕺",
				"Há surpresas… mas se conto deixa de ser surpresa 😉",
				"Sempre aqui, pronto para animar a conversa 😄",
				"Claro que ajudo — dispara!",
			},
		},
		{
			Topic: "confirmacoes",
			Questions: []string{
				"quem vai", "quem confirmou", "quem falta confirmar", "já há muita gente confirmada",
				"a inês vai", "o diogo vem", "o miguel vai", "a jojo confirmou",
			},
			Answers: []string{
				"Até agora a lista está forte! Não faltes, {nome} 🎉",
				"Inês e Diogo confirmados; a Jojo disse que leva glitter ✨",
				"O Miguel é o anfitrião — esse não falha 🏠",
				"Faltam alguns confirmar, mas vai ficar cheio 😄",
			},
		},
		{
			Topic: "social",
			Questions: []string{
				"o diogo já chegou", "a inês está a caminho", "a catarina vai se atrasar",
				"a raquel vem", "o gustavo confirmou", "o barbeitos vai",
			},
			Answers: []string{
				"Estão a caminho — a animação já começou no grupo 🤳",
				"Alguns chegam mais tarde, mas vão todos aparecer 😉",
				"Sim, confirmaram — e com boa disposição!",
			},
		},
		{
			Topic: "elogios",
			Questions: []string{
				"estás impecável", "gosto do teu estilo", "curto o teu humor", "gosto do diacono",
				"és top", "és o maior", "és divertido",
			},
			Answers: []string{
				"O Diácono agradece e retribui com confetes 🎊",
				"És tu que brilhas, {nome}! 💫",
				"A missão é espalhar boa energia — cumprida 😄",
			},
		},
		{
			Topic: "pos_festa",
			Questions: []string{
				"mandas fotos depois", "partilhas as fotos", "vai haver álbum",
				"manda localização", "envias a morada",
			},
			Answers: []string{
				"Claro! Depois partilhamos o álbum no grupo 📸",
				"A morada é Casa do Miguel, Porto — simples e direto 🏠",
				"Localização segue no grupo antes da hora 📍",
			},
		},
		{
			Topic: "saudacao",
			Questions: []string{
				"olá", "boas", "bom dia", "boa tarde", "boa noite",
				"como estás", "tudo bem", "que tal", "hey", "oi", "estás por aí",
			},
			Answers: []string{
				"Olá, {nome}! 👋 Pronto para começar a festa?",
				"Boas, {nome}! 😄 Já a pensar na noite de ano?",
				"O Diácono Remédios ao seu dispor 🙏✨",
				"Bem-vindo, {nome}! 🎉 Está quase na hora do brinde!",
				"Que alegria ver-te, {nome}! 💫",
			},
			Synonyms: [][2]string{{"olá", "ola"}},
		},
	}
}
