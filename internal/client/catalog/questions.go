package catalog

var riasecQuestions = []Question{
	{Text: "I enjoy working with tools and machines.", Domain: "Realistic"},
	{Text: "I like outdoor activities and nature.", Domain: "Realistic"},
	{Text: "I enjoy fixing mechanical problems.", Domain: "Realistic"},
	{Text: "I prefer physical tasks over desk work.", Domain: "Realistic"},
	{Text: "I like building and assembling things.", Domain: "Realistic"},
	{Text: "I enjoy repairing vehicles or equipment.", Domain: "Realistic"},
	{Text: "I am skilled in using hand tools.", Domain: "Realistic"},
	{Text: "I prefer practical and hands-on activities.", Domain: "Realistic"},
	{Text: "I feel confident doing outdoor work.", Domain: "Realistic"},
	{Text: "I like solving technical problems.", Domain: "Realistic"},
	{Text: "I enjoy solving math or science problems.", Domain: "Investigative"},
	{Text: "I like conducting experiments.", Domain: "Investigative"},
	{Text: "I enjoy reading technical or scientific material.", Domain: "Investigative"},
	{Text: "I prefer thinking and analyzing.", Domain: "Investigative"},
	{Text: "I like exploring new ideas.", Domain: "Investigative"},
	{Text: "I enjoy data analysis.", Domain: "Investigative"},
	{Text: "I like working independently on research.", Domain: "Investigative"},
	{Text: "I enjoy understanding how systems work.", Domain: "Investigative"},
	{Text: "I like drawing conclusions based on evidence.", Domain: "Investigative"},
	{Text: "I enjoy logical reasoning tasks.", Domain: "Investigative"},
	{Text: "I enjoy drawing, painting, or crafting.", Domain: "Artistic"},
	{Text: "I like playing musical instruments.", Domain: "Artistic"},
	{Text: "I enjoy writing stories or poetry.", Domain: "Artistic"},
	{Text: "I like working in unstructured environments.", Domain: "Artistic"},
	{Text: "I enjoy acting or performing arts.", Domain: "Artistic"},
	{Text: "I appreciate creative expression.", Domain: "Artistic"},
	{Text: "I like designing things.", Domain: "Artistic"},
	{Text: "I enjoy photography or videography.", Domain: "Artistic"},
	{Text: "I am imaginative and expressive.", Domain: "Artistic"},
	{Text: "I dislike repetitive tasks.", Domain: "Artistic"},
	{Text: "I enjoy helping others.", Domain: "Social"},
	{Text: "I like working with children or the elderly.", Domain: "Social"},
	{Text: "I enjoy teaching or tutoring.", Domain: "Social"},
	{Text: "I like to support others emotionally.", Domain: "Social"},
	{Text: "I prefer teamwork over solo tasks.", Domain: "Social"},
	{Text: "I like organizing community events.", Domain: "Social"},
	{Text: "I value empathy and compassion.", Domain: "Social"},
	{Text: "I enjoy listening to people's problems.", Domain: "Social"},
	{Text: "I feel fulfilled when helping others.", Domain: "Social"},
	{Text: "I prefer people-oriented roles.", Domain: "Social"},
	{Text: "I enjoy leading and persuading people.", Domain: "Enterprising"},
	{Text: "I like selling or promoting ideas.", Domain: "Enterprising"},
	{Text: "I am confident in making decisions.", Domain: "Enterprising"},
	{Text: "I enjoy public speaking.", Domain: "Enterprising"},
	{Text: "I like planning business strategies.", Domain: "Enterprising"},
	{Text: "I am motivated by financial success.", Domain: "Enterprising"},
	{Text: "I like taking risks and innovating.", Domain: "Enterprising"},
	{Text: "I enjoy negotiating deals.", Domain: "Enterprising"},
	{Text: "I feel comfortable in leadership roles.", Domain: "Enterprising"},
	{Text: "I prefer dynamic work environments.", Domain: "Enterprising"},
	{Text: "I like organizing files and records.", Domain: "Conventional"},
	{Text: "I prefer structured tasks.", Domain: "Conventional"},
	{Text: "I enjoy working with numbers.", Domain: "Conventional"},
	{Text: "I follow rules and procedures.", Domain: "Conventional"},
	{Text: "I like entering data accurately.", Domain: "Conventional"},
	{Text: "I enjoy scheduling and planning.", Domain: "Conventional"},
	{Text: "I feel confident in clerical work.", Domain: "Conventional"},
	{Text: "I prefer working behind the scenes.", Domain: "Conventional"},
	{Text: "I like analyzing records and documentation.", Domain: "Conventional"},
	{Text: "I enjoy tasks with clear expectations.", Domain: "Conventional"},
}

var psychosocialQuestions = questions(
	"How satisfied are you with your family relationships?",
	"Do you feel supported by peers and coworkers?",
	"Have you experienced recent stress or trauma?",
	"Do you find it difficult to express your feelings?",
	"How would you rate your self-esteem?",
	"Do you feel safe in your current environment?",
	"Do you engage in any harmful behaviors (e.g., self-harm)?",
	"How would you rate your daily functioning?",
	"Do you have someone to turn to during crisis?",
	"Have you previously sought professional help?",
)

var mentalHealthQuestions = questions(
	"In the past 2 weeks, have you felt sad or down?",
	"Do you often feel anxious or restless?",
	"Have you lost interest in activities you used to enjoy?",
	"Do you experience difficulty sleeping or eating?",
	"Have you had panic attacks or racing thoughts?",
	"Do you feel overwhelmed by daily responsibilities?",
	"Have you had thoughts of self-harm or suicide?",
	"Do you experience fatigue without physical exertion?",
	"Do you struggle to concentrate or make decisions?",
	"Do you avoid social situations or responsibilities?",
)
