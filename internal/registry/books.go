// books.go is the authored book table. Unlike compendiums and thoughts this
// is not generated from files - edit the list directly to add a book.

package registry

var books = []Book{
	{
		Title:    "Steve Jobs",
		Image:    "/books/steve-jobs.jpg",
		Thoughts: "Intensity, determination, and a relentless focus on the products details",
	},
	{
		Title:    "The Mythical Man Month",
		Image:    "/books/mythical-man-month.jpg",
		Thoughts: "Prepare for frustration, expect to throw away, take documentation seriously, and don't be afraid to say no.",
	},
	{
		Title:    "Shoe Dog",
		Image:    "/books/shoe-dog.webp",
		Thoughts: "The “you grow or you die“ mindset, a great story about perseverance taught through distance translated into business",
	},
	{
		Title:    "Build",
		Image:    "/books/build.jpg",
		Thoughts: "My favorite book, read it! Learned so much that I can't note it all down here.",
	},
	{
		Title:    "The Minimalist Entrepreneur",
		Image:    "/books/minimalist.webp",
		Thoughts: "You don't need to build the next overfunded unicorn! You're probably better off solving a real problem for a community you're passionate about in a profitable (sustainable) way.",
	},
	{
		Title:    "Invention",
		Image:    "/books/invention.jpg",
		Thoughts: "Again a great story about determination it took 5127 prototypes to get the 1st version of the vacuum. Also really inspiring what Dyson does in engineering side but also on the socail & environmental side.",
	},
	{
		Title:    "Hatching Twitter",
		Image:    "/books/hatching-twitter.jpg",
		Thoughts: "Startups are as fragile as the people / relationships who built them. Human egos, power struggles, and ownership conflicts often determine a company's trajectory more than the technology itself.",
	},
	{
		Title:    "The Hard Thing About Hard Things",
		Image:    "/books/hard-thing-about-hard-things.jpg",
		Thoughts: "“If you are going to eat shit, don't nibble.” Leadership isn't about following formulas the hard things is ... there are none. Prioritize people -> product -> profits in that order.",
	},
	{
		Title:    "The Lean Startup",
		Image:    "/books/lean-startup.jpg",
		Thoughts: "MVP's rule. Stay focused on the problem",
	},
	{
		Title:    "The Almanack of Naval Ravikant",
		Image:    "/books/almanack-naval-ravikant.jpg",
		Thoughts: "Embrace short-term pain for long-term gain and stay aligned with your personal values. Happiness come from authenticity, continuous learning, and building",
	},
	{
		Title:    "No Filter",
		Image:    "/books/no-filter.jpg",
		Thoughts: "13 employees perfectionism, risk-aversion, and community focus 1BN$ aquisition",
	},
	{
		Title:    "Zero to One",
		Image:    "/books/zero-to-one.jpg",
		Thoughts: "True innovation comes from creating something entirely new ('zero to one') rather than iterating on existing ideas, and success requires building a monopoly through a unique solution, perfect timing, the right team.",
	},
	{
		Title:    "The maths that made us",
		Image:    "/books/the-maths-that-made-us.webp",
		Thoughts: "How mathematics has been humanity's essential companion throughout history, evolving from basic numeration to concepts like imaginary numbers and Boolean logic",
	},
	{
		Title:    "Anything You Want",
		Image:    "/books/anything-you-want.jpg",
		Thoughts: "When you're on to something great, it won't feel like a revolution. It'll feel like common sense. Either Hell yeah or no (I genuinely live by this). Never forget that absolutely everything you do is for the customer.",
	},
	{
		Title:    "The Annotated Turing",
		Image:    "/books/annotated-turing.jpg",
		Thoughts: "How the genius who solved the enigma and came up test for human intelligence developed the theoretical foundation for modern computers",
	},
	{
		Title:    "Rockefellers 38 Letters",
		Image:    "/books/rockefeller-letters.jpg",
		Thoughts: "Extreme competitiveness & ownership alongside a positive mindset (embracing failure) and always take action",
	},
}
