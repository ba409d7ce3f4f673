package services

// All user-facing copy for the bot, in one place (pt-BR).
const (
	msgWelcome = "🏠 Olá! Sou a assistente virtual da *Habiticon*.\n\nComo posso ajudar você hoje?"

	msgMediaWelcome = "Olá! Recebi o seu ficheiro. Para que eu possa ajudar, vou apresentar as minhas opções de atendimento. 😊"

	msgMainMenu = "Por favor, escolha uma das opções abaixo:\n\n*1️⃣ Lançamento Residencial Graciosa (Firminópolis-GO)*\n*2️⃣ Falar com um Consultor*\n*3️⃣ Sobre a Habiticon*\n*4️⃣ Já sou Cliente*\n*5️⃣ Encerrar Atendimento*\n\n_A qualquer momento, digite *menu* para voltar a estas opções._"

	msgConsultantMenu = "Entendido. Para direcionar melhor o seu atendimento, sobre qual assunto você gostaria de falar?\n\n*1️⃣ Sobre o lançamento em Firminópolis*\n*2️⃣ Outro assunto*\n\n_Digite *menu* para voltar ao início._"

	msgStartCaptureFromMenu = "Excelente escolha! Vamos iniciar o seu cadastro para o lançamento do *Residencial Graciosa*."

	msgStartCaptureFromConsultant = "Ótimo! Para adiantar o seu atendimento sobre o lançamento, vou recolher alguns dados."

	msgAbout = "A *Habiticon* nasceu com o propósito de transformar o sonho da casa própria em realidade, oferecendo projetos modernos, de qualidade e com condições facilitadas. Estamos muito felizes por começar a nossa história em Firminópolis com o Residencial Graciosa! 🚀"

	msgBackToMenuHint = "Para voltar ao menu, digite *menu*."

	msgExistingCustomer = "Que bom ter você de volta! Para agilizar, pode me adiantar do que precisa (enviando texto, áudio ou documentos).\n\nUm consultor irá assumir a conversa assim que possível para dar continuidade ao seu atendimento. 👍"

	msgConsultantHandoff = "Certo! Estou transferindo a sua conversa para um de nossos consultores. Em breve ele(a) irá te atender por aqui. 👨‍💼👩‍💼"

	msgOptionNotRecognized = "😕 Opção não reconhecida.\n\nPor favor, digite apenas o número da opção desejada. Se preferir, digite *menu* para ver as opções novamente."

	msgMediaInMenu = "Desculpe, neste momento não consigo processar áudios ou ficheiros.\n\nPor favor, escolha uma das opções *digitando o número* correspondente."

	msgAskName = "Para começar, por favor, me diga seu *nome completo*. 👇"

	msgAskEmailFmt = "Obrigado, *%s*! ✨\n\nAgora, só preciso do seu *melhor e-mail*.\n\nCom ele, poderemos te enviar:\n• Informações exclusivas\n• Uma pré-simulação do seu financiamento"

	msgInvalidEmail = "😕 Humm, este e-mail não parece válido.\n\nPor favor, verifique se digitou corretamente e incluiu um domínio conhecido (como @gmail.com, @hotmail.com, etc.).\n\n_Se preferir, digite *menu* para voltar ao início._"

	msgCaptureDone = "✅ *Cadastro concluído com sucesso!*\n\nSeus dados foram encaminhados para um de nossos consultores especializados."

	msgCaptureDoneFollowup = "_Por favor, aguarde um instante. Em breve, ele(a) entrará em contato por aqui mesmo para dar sequência ao seu sonho da casa própria!_ 🏡"

	msgAlreadyRegistered = "Olá! 😊 Sua solicitação já foi registrada e um consultor entrará em contato em breve.\n\n_Se desejar ver as opções novamente, digite *menu*._"

	msgCloseDuringCapture = "Entendido. Suas informações foram salvas e um consultor poderá entrar em contato. Atendimento encerrado. 😊"

	msgClosePlain = "Atendimento encerrado. Se precisar de algo mais, basta nos chamar!"

	msgGoodbye = "Atendimento encerrado. Obrigado pelo seu contato!"
)
