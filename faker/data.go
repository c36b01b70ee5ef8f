package faker

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Minh",
	"Linh", "Anh", "Huong", "Duc", "Somchai", "Siti", "Wei", "Putri", "Jose",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Nguyen", "Tran", "Le", "Pham",
	"Hoang", "Tan", "Lim", "Wong", "Santos", "Reyes", "Anderson", "Taylor",
	"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com",
	"example.org", "example.net",
}

var streetSuffixes = []string{
	"Street", "Avenue", "Boulevard", "Lane", "Road", "Drive", "Court",
	"Place", "Terrace", "Way",
}

var cities = []string{
	"Springfield", "Riverton", "Lakeside", "Fairview", "Georgetown",
	"Clinton", "Salem", "Madison", "Franklin", "Arlington", "Ashland",
	"Burlington", "Clayton", "Dayton", "Oxford", "Milton", "Newport",
	"Kingston", "Bristol", "Dover",
}

var states = []string{
	"Alabama", "Alaska", "Arizona", "California", "Colorado", "Florida",
	"Georgia", "Illinois", "Indiana", "Kansas", "Kentucky", "Maine",
	"Michigan", "Nevada", "Ohio", "Oregon", "Texas", "Utah", "Vermont",
	"Washington",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Ltd", "and Sons", "Holdings", "Industries",
	"Partners", "Labs", "Co",
}

// loremWords is the vocabulary for words, sentences and text blocks.
var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "fugiat",
	"nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat",
	"non", "proident", "sunt", "culpa", "qui", "officia", "deserunt",
	"mollit", "anim", "id", "est", "laborum",
}
