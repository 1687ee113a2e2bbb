package fallback

import "github.com/stemsi/aptify-backend/internal/model"

// Hand-written questions served when the generator yields nothing usable.
// The banks are read-only after package initialisation.

var aptitudeBank = []model.Question{
	{
		Question:      "If 5x + 3 = 18, what is x?",
		Options:       []string{"2", "3", "4", "5"},
		CorrectAnswer: "3",
		Explanation:   "5x + 3 = 18 => 5x = 15 => x = 3",
	},
	{
		Question:      "A car travels at 60 km/h for 2 hours and then at 40 km/h for 3 hours. What is the average speed?",
		Options:       []string{"48 km/h", "50 km/h", "52 km/h", "54 km/h"},
		CorrectAnswer: "48 km/h",
		Explanation:   "Total distance = 60×2 + 40×3 = 120 + 120 = 240 km. Total time = 5 hours. Average speed = 240÷5 = 48 km/h.",
	},
	{
		Question:      "If a product is discounted by 20% and then by 25% on the reduced price, what is the overall discount percentage?",
		Options:       []string{"40%", "45%", "40.5%", "50%"},
		CorrectAnswer: "40%",
		Explanation:   "After first discount, price becomes 80%. After second discount, price becomes 80% × 75% = 60% of original. So discount is 40%.",
	},
	{
		Question:      "The ratio of boys to girls in a class is 3:5. If there are 24 boys, how many students are there in total?",
		Options:       []string{"56", "64", "60", "58"},
		CorrectAnswer: "64",
		Explanation:   "Boys:Girls = 3:5. If boys = 24, then 3x = 24, so x = 8. Girls = 5x = 40. Total = 24 + 40 = 64.",
	},
	{
		Question:      "A can complete a work in 12 days and B can complete it in 15 days. How many days will they take to complete the work together?",
		Options:       []string{"6.67 days", "7.5 days", "6 days", "6.5 days"},
		CorrectAnswer: "6.67 days",
		Explanation:   "A's work per day = 1/12, B's work per day = 1/15. Together = 1/12 + 1/15 = (5+4)/60 = 9/60 = 3/20. Days needed = 20/3 = 6.67 days.",
	},
	{
		Question:      "If a number is increased by 20% and then decreased by 20%, the final number is what percent of the original?",
		Options:       []string{"96%", "100%", "95%", "90%"},
		CorrectAnswer: "96%",
		Explanation:   "If original = x, after 20% increase: 1.2x, after 20% decrease: 1.2x × 0.8 = 0.96x, which is 96% of original.",
	},
	{
		Question:      "A train passes a 200m long platform in 20 seconds and a 300m long platform in 25 seconds at the same speed. What is the length of the train?",
		Options:       []string{"300m", "200m", "100m", "400m"},
		CorrectAnswer: "100m",
		Explanation:   "Let train length be L and speed be v. Then (L+200)/v = 20 and (L+300)/v = 25. Solving these equations: L = 100m.",
	},
	{
		Question:      "The compound interest on a certain sum for 2 years at 10% per annum is Rs. 2100. What is the simple interest for the same period and rate?",
		Options:       []string{"Rs. 1900", "Rs. 2000", "Rs. 2050", "Rs. 2150"},
		CorrectAnswer: "Rs. 2000",
		Explanation:   "Let principal be P. Then P(1.1)² - P = 2100, so P = 10000. Simple interest = 10000 × 0.1 × 2 = 2000.",
	},
	{
		Question:      "The average of 5 consecutive even numbers is 22. What is the largest of these numbers?",
		Options:       []string{"24", "26", "28", "30"},
		CorrectAnswer: "26",
		Explanation:   "Let the numbers be x, x+2, x+4, x+6, x+8. Their average is 22. So (5x+20)/5 = 22, which gives x = 18. Largest number = x+8 = 26.",
	},
	{
		Question:      "A man buys an article for Rs. 1200 and sells it at a profit of 20%. What is the selling price?",
		Options:       []string{"Rs. 1400", "Rs. 1440", "Rs. 1500", "Rs. 1420"},
		CorrectAnswer: "Rs. 1440",
		Explanation:   "Profit = 20% of 1200 = 240. Selling price = 1200 + 240 = 1440.",
	},
}

var reasoningBank = []model.Question{
	{
		Question:      "Which number should come next in the series: 2, 6, 12, 20, 30, ?",
		Options:       []string{"42", "36", "40", "44"},
		CorrectAnswer: "42",
		Explanation:   "The differences between consecutive terms are 4, 6, 8, 10, 12. So the next number is 30 + 12 = 42.",
	},
	{
		Question:      "If EARTH is coded as 41590, how is HEART coded?",
		Options:       []string{"04159", "01459", "94150", "94510"},
		CorrectAnswer: "04159",
		Explanation:   "In EARTH: E=4, A=1, R=5, T=9, H=0. So HEART would be 04159.",
	},
	{
		Question:      "If 'A + B' means 'A is the father of B', 'A - B' means 'A is the wife of B', 'A × B' means 'A is the brother of B', and 'A ÷ B' means 'A is the daughter of B', then which of the following means 'P is the maternal uncle of Q'?",
		Options:       []string{"P × R - S + Q", "P × S - R + Q", "P × S + R - Q", "P - S × R + Q"},
		CorrectAnswer: "P × S - R + Q",
		Explanation:   "P is the brother of S, S is the wife of R, R is the father of Q. So P is the brother of Q's mother, or Q's maternal uncle.",
	},
	{
		Question:      "In a certain code, COMPUTER is written as RFUVQNPC. How will PRINTER be written in the same code?",
		Options:       []string{"QSJOUFS", "SFUOJSQ", "STNUIQE", "QSJOUFQ"},
		CorrectAnswer: "QSJOUFQ",
		Explanation:   "Each letter is replaced by the previous letter in the alphabet. So P→Q, R→S, I→J, N→O, T→U, E→F, R→S.",
	},
	{
		Question:      "If A=1, B=2, ..., Z=26, what is the sum of the values of the letters in the word 'CODE'?",
		Options:       []string{"27", "37", "26", "25"},
		CorrectAnswer: "27",
		Explanation:   "C=3, O=15, D=4, E=5. Sum = 3 + 15 + 4 + 5 = 27.",
	},
	{
		Question:      "Which figure comes next in the sequence? [Square, Circle, Triangle, Square, Circle, ?]",
		Options:       []string{"Square", "Triangle", "Circle", "Pentagon"},
		CorrectAnswer: "Triangle",
		Explanation:   "The pattern repeats: Square, Circle, Triangle. So after Square, Circle comes Triangle.",
	},
	{
		Question:      "If 'table' is called 'chair', 'chair' is called 'bed', 'bed' is called 'window', and 'window' is called 'almirah', then where does a person sleep?",
		Options:       []string{"Table", "Chair", "Window", "Bed"},
		CorrectAnswer: "Window",
		Explanation:   "A person sleeps on a bed, which is called 'window' in this coded language.",
	},
	{
		Question:      "A is B's sister. C is B's mother. D is C's father. E is D's mother. How is A related to D?",
		Options:       []string{"Granddaughter", "Grandfather", "Grandmother", "Daughter"},
		CorrectAnswer: "Granddaughter",
		Explanation:   "A is B's sister, C is B's mother, so C is also A's mother. D is C's father, so D is A's grandfather. Therefore, A is D's granddaughter.",
	},
	{
		Question:      "In a row of children, Ravi is 7th from the left and Rani is 12th from the right. If they interchange their positions, Ravi becomes 22nd from the left. How many children are there in the row?",
		Options:       []string{"33", "34", "32", "31"},
		CorrectAnswer: "33",
		Explanation:   "After interchange, Ravi is 22nd from left. Originally he was 7th from left, so he moved 15 positions right. This means Rani was 15 positions to his right. So Rani was at position 7+15=22. Rani was also 12th from right, so total children = 22+12-1 = 33.",
	},
	{
		Question:      "If '+' means '÷', '-' means '×', '×' means '+', and '÷' means '-', then 16 + 4 - 3 × 2 ÷ 5 = ?",
		Options:       []string{"7", "8", "9", "10"},
		CorrectAnswer: "9",
		Explanation:   "Using the substitutions: 16 ÷ 4 × 3 + 2 - 5 = 4 × 3 + 2 - 5 = 12 + 2 - 5 = 14 - 5 = 9.",
	},
}

var verbalBank = []model.Question{
	{
		Question:      "Choose the synonym of 'Benevolent':",
		Options:       []string{"Beneficial", "Kind", "Malevolent", "Selfish"},
		CorrectAnswer: "Kind",
		Explanation:   "Benevolent means 'well-meaning and kindly'. 'Kind' is a synonym.",
	},
	{
		Question:      "Choose the antonym of 'Audacious':",
		Options:       []string{"Timid", "Bold", "Brave", "Daring"},
		CorrectAnswer: "Timid",
		Explanation:   "Audacious means 'showing a willingness to take surprisingly bold risks'. 'Timid' means showing a lack of courage or confidence, which is the opposite.",
	},
	{
		Question:      "Complete the analogy: Wood is to Carpenter as Brick is to _______",
		Options:       []string{"Building", "Mason", "Clay", "Stone"},
		CorrectAnswer: "Mason",
		Explanation:   "A carpenter works with wood, and a mason works with bricks.",
	},
	{
		Question:      "Choose the word with the correct spelling:",
		Options:       []string{"Acommodation", "Accommodation", "Accomodation", "Acomodation"},
		CorrectAnswer: "Accommodation",
		Explanation:   "The correct spelling is 'Accommodation' with two 'c's and two 'm's.",
	},
	{
		Question:      "Choose the meaning of the idiom 'To bite the dust':",
		Options:       []string{"To die", "To eat dirt", "To fail", "To be humiliated"},
		CorrectAnswer: "To fail",
		Explanation:   "To bite the dust means to fail or to be defeated.",
	},
	{
		Question:      "Choose the part that contains an error: The committee (A)/ has submitted (B)/ their report (C)/ to the principal. (D)",
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "C",
		Explanation:   "The committee is singular, so it should be 'its report' not 'their report'.",
	},
	{
		Question:      "Fill in the blank: She _______ watching the movie when the power went out.",
		Options:       []string{"was", "is", "were", "are"},
		CorrectAnswer: "was",
		Explanation:   "The sentence is in past continuous tense, and 'she' is singular, so 'was' is the correct form.",
	},
	{
		Question:      "Choose the one-word substitute for 'A person who collects coins':",
		Options:       []string{"Philatelist", "Numismatist", "Philanthropist", "Misanthrope"},
		CorrectAnswer: "Numismatist",
		Explanation:   "A numismatist is a person who collects coins. A philatelist collects stamps.",
	},
	{
		Question:      "Choose the correct meaning of the prefix 'inter-':",
		Options:       []string{"Within", "Below", "Between", "Above"},
		CorrectAnswer: "Between",
		Explanation:   "The prefix 'inter-' means 'between' or 'among', as in 'international' (between nations).",
	},
	{
		Question:      "Choose the passive voice of 'They are building a new bridge':",
		Options:       []string{"A new bridge is built by them", "A new bridge has been built by them", "A new bridge was being built by them", "A new bridge is being built by them"},
		CorrectAnswer: "A new bridge is being built by them",
		Explanation:   "The active voice is in present continuous tense, so the passive form is 'is being built'.",
	},
}
