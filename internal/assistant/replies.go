package assistant

import (
	"strings"
)

const (
	SourceGemini = "gemini"
	SourceLocal  = "local"

	ErrMessageMissing = "Mensagem não fornecida"
)

const personaPrompt = `Você é MARI, a assistente de fitness do app MovimentAI.

PERSONALIDADE:
- Motivadora, enérgica e positiva
- Use emojis ocasionalmente mas sem exagero
- Seja direta e objetiva
- Celebre conquistas dos usuários

FUNCIONALIDADES DO APP:
1. **Treinos**: Criar com IA ou manual, biblioteca de treinos, treino do dia
2. **Dashboard**: Água, hábitos, progresso semanal, mindfulness
3. **Calendário**: Histórico de treinos
4. **Perfil**: Editar dados, foto, medidas corporais
5. **Biblioteca**: exercícios com vídeos e instruções

RESPONDA SOBRE:
- Criação e ajuste de treinos
- Nutrição básica (avise para consultar nutricionista para planos personalizados)
- Tempo de descanso entre séries
- Mindfulness e meditação
- Acompanhamento de progresso
- Motivação e dicas de consistência

NUNCA:
- Diagnostique lesões ou problemas médicos
- Prescreva medicamentos
- Dê orientações nutricionais muito específicas sem avisar sobre nutricionista

Seja sempre útil e direcione o usuário para as funcionalidades certas do app!`

const personaAck = "Entendido! Sou a MARI, assistente de fitness do MovimentAI. Como posso ajudar você hoje?"

type keywordReply struct {
	keyword string
	reply   string
}

// checked in order, first match wins
var keywordReplies = []keywordReply{
	{
		keyword: "criar treino",
		reply: `Ótimo! Vou te ajudar a criar um treino personalizado.

Para criar um treino você pode:

1. **Gerar com IA**: Vá em Treinos > Gerar com IA e preencha suas preferências
2. **Criar Manual**: Vá em Treinos > Criar Manual e escolha seus exercícios

Qual opção prefere?`,
	},
	{
		keyword: "ajustar treino",
		reply: `Para ajustar seu treino atual:

1. Acesse "Treinos" no menu
2. Veja seu "Próximo Treino"
3. Clique no treino para editá-lo

Ou posso sugerir ajustes. Qual parte do treino você quer modificar?`,
	},
	{
		keyword: "nutrição",
		reply: `Sobre nutrição, aqui vão algumas dicas gerais:

• **Hidratação**: Beba pelo menos 2L de água por dia
• **Proteínas**: Consuma cerca de 1,6-2,2g por kg de peso corporal
• **Pré-treino**: Carboidratos 30-60min antes
• **Pós-treino**: Proteína + carboidrato nas primeiras 2h

⚠️ Para orientações personalizadas, consulte um nutricionista!`,
	},
	{
		keyword: "descanso",
		reply: `O tempo de descanso ideal varia:

• **Força**: 2-5 minutos entre séries
• **Hipertrofia**: 1-2 minutos
• **Resistência**: 30-60 segundos
• **HIIT**: 15-30 segundos

Seu treino atual já inclui cronômetros automáticos!`,
	},
	{
		keyword: "mindfulness",
		reply: `Para praticar mindfulness:

1. Vá em Dashboard
2. Role até "Mindfulness"
3. Ative a opção
4. Acesse vídeos guiados de meditação

Benefícios: reduz stress, melhora foco e recuperação muscular!`,
	},
	{
		keyword: "progresso",
		reply: `Para ver seu progresso:

• **Dashboard**: Veja gráficos de evolução semanal
• **Calendário**: Histórico de treinos concluídos
• **Perfil**: Medidas corporais e metas

Continue assim! A consistência é a chave! 💪`,
	},
}

const genericReply = `Olá! Sou a MARI, sua assistente de fitness! 💪

Posso te ajudar com:
• Criar treinos personalizados
• Ajustar seu calendário de treinos
• Acessar biblioteca de exercícios
• Configurar mindfulness e meditação
• Ver seu progresso e evolução

O que você gostaria de fazer hoje?`

// troubleReply answers requests the handler could not even read.
const troubleReply = `Oi! Tive um pequeno problema técnico, mas estou aqui! 🌟

Como posso te ajudar? Posso auxiliar com:
- Treinos e exercícios
- Nutrição básica
- Acompanhamento de progresso
- Motivação e dicas

Me conte o que você precisa!`

// LocalReply picks the canned reply for message, the generic menu when no keyword matches.
func LocalReply(message string) string {
	normalized := strings.ToLower(message)
	for _, kr := range keywordReplies {
		if strings.Contains(normalized, kr.keyword) {
			return kr.reply
		}
	}
	return genericReply
}
