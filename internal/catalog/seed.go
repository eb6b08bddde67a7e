package catalog

// seedBooks is the fixed catalog content. Prices are whole currency units.
var seedBooks = []Book{
	{
		ID:          "1",
		Title:       "The Great Gatsby",
		Author:      "F. Scott Fitzgerald",
		Genre:       "Fiction",
		Price:       2500,
		Description: "A classic novel set in the Jazz Age that explores themes of decadence, idealism, resistance to change, and excess. The story primarily concerns the young and mysterious millionaire Jay Gatsby and his quixotic passion for the beautiful Daisy Buchanan.",
		Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
		Stock:       15,
		Rating:      4.5,
		Reviews:     328,
	},
	{
		ID:          "2",
		Title:       "To Kill a Mockingbird",
		Author:      "Harper Lee",
		Genre:       "Fiction",
		Price:       3000,
		Description: "A gripping tale of racial inequality and childhood innocence. The unforgettable novel of a childhood in a sleepy Southern town and the crisis of conscience that rocked it.",
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		Stock:       20,
		Rating:      4.8,
		Reviews:     456,
	},
	{
		ID:          "3",
		Title:       "The Lord of the Rings",
		Author:      "J.R.R. Tolkien",
		Genre:       "Fantasy",
		Price:       4500,
		Description: "An epic high-fantasy novel that follows the hobbit Frodo Baggins as he and the Fellowship embark on a quest to destroy the One Ring and ensure the destruction of its maker, the Dark Lord Sauron.",
		Image:       "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=400",
		Stock:       12,
		Rating:      4.9,
		Reviews:     892,
	},
	{
		ID:          "4",
		Title:       "1984",
		Author:      "George Orwell",
		Genre:       "Science Fiction",
		Price:       2800,
		Description: "A dystopian social science fiction novel that follows the life of Winston Smith, a low-ranking member of \"the Party,\" who is frustrated by the omnipresent eyes of the party.",
		Image:       "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
		Stock:       18,
		Rating:      4.7,
		Reviews:     672,
	},
	{
		ID:          "5",
		Title:       "Pride and Prejudice",
		Author:      "Jane Austen",
		Genre:       "Romance",
		Price:       2200,
		Description: "A romantic novel of manners that follows the character development of Elizabeth Bennet, the protagonist of the book, who learns about the repercussions of hasty judgments.",
		Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
		Stock:       25,
		Rating:      4.6,
		Reviews:     534,
	},
	{
		ID:          "6",
		Title:       "The Hobbit",
		Author:      "J.R.R. Tolkien",
		Genre:       "Fantasy",
		Price:       3200,
		Description: "A fantasy novel that follows the quest of home-loving Bilbo Baggins, the hobbit, to win a share of the treasure guarded by Smaug the dragon.",
		Image:       "https://images.unsplash.com/photo-1589998059171-988d887df646?w=400",
		Stock:       22,
		Rating:      4.8,
		Reviews:     721,
	},
	{
		ID:          "7",
		Title:       "Harry Potter and the Sorcerer's Stone",
		Author:      "J.K. Rowling",
		Genre:       "Fantasy",
		Price:       3500,
		Description: "The first novel in the Harry Potter series follows Harry Potter, a young wizard who discovers his magical heritage on his eleventh birthday.",
		Image:       "https://images.unsplash.com/photo-1551029506-0807df4e2031?w=400",
		Stock:       30,
		Rating:      4.9,
		Reviews:     1024,
	},
	{
		ID:          "8",
		Title:       "The Catcher in the Rye",
		Author:      "J.D. Salinger",
		Genre:       "Fiction",
		Price:       2400,
		Description: "A story about a few days in the life of a troubled teenager, Holden Caulfield, who has been expelled from prep school and is wandering around New York City.",
		Image:       "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=400",
		Stock:       16,
		Rating:      4.3,
		Reviews:     389,
	},
	{
		ID:          "9",
		Title:       "The Chronicles of Narnia",
		Author:      "C.S. Lewis",
		Genre:       "Fantasy",
		Price:       4000,
		Description: "A series of seven fantasy novels that narrate the history of the magical land of Narnia and the adventures of various children who play central roles.",
		Image:       "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=400",
		Stock:       14,
		Rating:      4.7,
		Reviews:     645,
	},
	{
		ID:          "10",
		Title:       "Brave New World",
		Author:      "Aldous Huxley",
		Genre:       "Science Fiction",
		Price:       2600,
		Description: "A dystopian novel set in a futuristic World State, whose citizens are environmentally engineered into an intelligence-based social hierarchy.",
		Image:       "https://images.unsplash.com/photo-1497633762265-9d179a990aa6?w=400",
		Stock:       19,
		Rating:      4.4,
		Reviews:     412,
	},
	{
		ID:          "11",
		Title:       "The Alchemist",
		Author:      "Paulo Coelho",
		Genre:       "Fiction",
		Price:       1500,
		Description: "A philosophical book that tells the story of Santiago, an Andalusian shepherd boy who yearns to travel in search of a worldly treasure.",
		Image:       "https://images.unsplash.com/photo-1519682337058-a94d519337bc?w=400",
		Stock:       28,
		Rating:      4.6,
		Reviews:     567,
	},
	{
		ID:          "12",
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Price:       3800,
		Description: "A science fiction novel set in the distant future amidst a huge interstellar empire, telling the story of young Paul Atreides.",
		Image:       "https://images.unsplash.com/photo-1553729459-efe14ef6055d?w=400",
		Stock:       17,
		Rating:      4.8,
		Reviews:     789,
	},
	{
		ID:          "13",
		Title:       "The Book Thief",
		Author:      "Markus Zusak",
		Genre:       "Historical Fiction",
		Price:       3100,
		Description: "Set in Nazi Germany, it tells the story of Liesel Meminger, a young girl living with her foster family who steals books to share with others.",
		Image:       "https://images.unsplash.com/photo-1474932430478-367dbb6832c1?w=400",
		Stock:       21,
		Rating:      4.7,
		Reviews:     623,
	},
	{
		ID:          "14",
		Title:       "The Hunger Games",
		Author:      "Suzanne Collins",
		Genre:       "Science Fiction",
		Price:       2900,
		Description: "A dystopian novel about a young girl who volunteers to participate in a televised death match in order to save her sister.",
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		Stock:       24,
		Rating:      4.5,
		Reviews:     891,
	},
	{
		ID:          "15",
		Title:       "The Fault in Our Stars",
		Author:      "John Green",
		Genre:       "Romance",
		Price:       2300,
		Description: "A touching story about two teenage cancer patients who fall in love after meeting at a support group.",
		Image:       "https://images.unsplash.com/photo-1509021436665-8f07dbf5bf1d?w=400",
		Stock:       26,
		Rating:      4.4,
		Reviews:     734,
	},
	{
		ID:          "16",
		Title:       "The Da Vinci Code",
		Author:      "Dan Brown",
		Genre:       "Mystery",
		Price:       3300,
		Description: "A mystery thriller novel that follows symbologist Robert Langdon as he investigates a murder in the Louvre Museum.",
		Image:       "https://images.unsplash.com/photo-1526243741027-444d633d7365?w=400",
		Stock:       20,
		Rating:      4.2,
		Reviews:     512,
	},
	{
		ID:          "17",
		Title:       "The Girl with the Dragon Tattoo",
		Author:      "Stieg Larsson",
		Genre:       "Mystery",
		Price:       3400,
		Description: "A psychological thriller about a journalist and a computer hacker who investigate a 40-year-old disappearance.",
		Image:       "https://images.unsplash.com/photo-1485322551133-3a4c27a9d925?w=400",
		Stock:       18,
		Rating:      4.5,
		Reviews:     678,
	},
	{
		ID:          "18",
		Title:       "The Kite Runner",
		Author:      "Khaled Hosseini",
		Genre:       "Historical Fiction",
		Price:       2700,
		Description: "A powerful story of friendship set against the backdrop of tumultuous events in Afghanistan.",
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		Stock:       23,
		Rating:      4.6,
		Reviews:     589,
	},
	{
		ID:          "19",
		Title:       "The Help",
		Author:      "Kathryn Stockett",
		Genre:       "Historical Fiction",
		Price:       2800,
		Description: "Set in Mississippi during the 1960s, the story follows three women who dare to cross boundaries.",
		Image:       "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=400",
		Stock:       19,
		Rating:      4.7,
		Reviews:     612,
	},
	{
		ID:          "20",
		Title:       "Gone Girl",
		Author:      "Gillian Flynn",
		Genre:       "Mystery",
		Price:       3200,
		Description: "A psychological thriller about a woman who goes missing on her fifth wedding anniversary.",
		Image:       "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400",
		Stock:       22,
		Rating:      4.3,
		Reviews:     701,
	},
	{
		ID:          "21",
		Title:       "The Handmaid's Tale",
		Author:      "Margaret Atwood",
		Genre:       "Science Fiction",
		Price:       2900,
		Description: "A dystopian novel set in a totalitarian society where women have been stripped of all their rights.",
		Image:       "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=400",
		Stock:       17,
		Rating:      4.6,
		Reviews:     534,
	},
	{
		ID:          "22",
		Title:       "The Road",
		Author:      "Cormac McCarthy",
		Genre:       "Science Fiction",
		Price:       2500,
		Description: "A post-apocalyptic novel following a father and son as they journey through a devastated landscape.",
		Image:       "https://images.unsplash.com/photo-1518051870910-a46e30d9db16?w=400",
		Stock:       15,
		Rating:      4.4,
		Reviews:     445,
	},
}
