package category

// DefaultTrees returns the built-in category trees. Each call returns a fresh
// copy so callers may not alias one another.
func DefaultTrees() Trees {
	return Trees{
		Expense: Tree{
			{ID: "food", Name: "餐饮", Icon: "Utensils", ColorHint: "bg-orange-100 text-orange-600", Children: []Node{
				{ID: "breakfast", Name: "早餐", Icon: "Coffee"},
				{ID: "lunch", Name: "午餐", Icon: "Soup"},
				{ID: "dinner", Name: "晚餐", Icon: "UtensilsCrossed"},
				{ID: "drinks", Name: "饮料", Icon: "Wine"},
				{ID: "snacks", Name: "零食", Icon: "Cookie"},
			}},
			{ID: "transport", Name: "交通", Icon: "Car", ColorHint: "bg-blue-100 text-blue-600", Children: []Node{
				{ID: "public", Name: "公共交通", Icon: "Bus", Children: []Node{
					{ID: "subway", Name: "地铁", Icon: "Train"},
					{ID: "bus", Name: "公交", Icon: "Bus"},
				}},
				{ID: "taxi", Name: "打车", Icon: "Car"},
				{ID: "private", Name: "私家车", Icon: "Car", Children: []Node{
					{ID: "fuel", Name: "加油", Icon: "Fuel"},
					{ID: "parking", Name: "停车", Icon: "ParkingCircle"},
				}},
				{ID: "travel", Name: "长途旅行", Icon: "Plane", Children: []Node{
					{ID: "flight", Name: "机票", Icon: "Plane"},
					{ID: "train_ticket", Name: "火车票", Icon: "Train"},
				}},
			}},
			{ID: "shopping", Name: "购物", Icon: "ShoppingBag", ColorHint: "bg-pink-100 text-pink-600", Children: []Node{
				{ID: "clothes", Name: "服饰", Icon: "Shirt"},
				{ID: "digital", Name: "数码", Icon: "Monitor"},
				{ID: "home_supplies", Name: "日用", Icon: "ShoppingCart"},
				{ID: "beauty", Name: "美妆", Icon: "Scissors"},
			}},
			{ID: "utilities", Name: "生活缴费", Icon: "Zap", ColorHint: "bg-yellow-100 text-yellow-600", Children: []Node{
				{ID: "water", Name: "水费", Icon: "Droplets"},
				{ID: "electric", Name: "电费", Icon: "Zap"},
				{ID: "internet", Name: "宽带", Icon: "Wifi"},
				{ID: "phone", Name: "话费", Icon: "Phone"},
			}},
			{ID: "housing", Name: "居住", Icon: "Building2", ColorHint: "bg-indigo-100 text-indigo-600", Children: []Node{
				{ID: "rent", Name: "房租", Icon: "Building2"},
				{ID: "furniture", Name: "家具", Icon: "Armchair"},
				{ID: "repair", Name: "维修", Icon: "Hammer"},
			}},
			{ID: "medical", Name: "医疗", Icon: "Pill", ColorHint: "bg-red-100 text-red-600", Children: []Node{
				{ID: "drug", Name: "药品", Icon: "Pill"},
				{ID: "hospital", Name: "就医", Icon: "Stethoscope"},
			}},
			{ID: "entertainment", Name: "娱乐", Icon: "Gamepad2", ColorHint: "bg-purple-100 text-purple-600", Children: []Node{
				{ID: "game", Name: "游戏", Icon: "Gamepad2"},
				{ID: "movie", Name: "电影", Icon: "Film"},
				{ID: "membership", Name: "会员订阅", Icon: "Ticket"},
			}},
			{ID: "education", Name: "教育", Icon: "GraduationCap", ColorHint: "bg-teal-100 text-teal-600", Children: []Node{
				{ID: "books", Name: "书籍", Icon: "BookOpen"},
				{ID: "course", Name: "课程", Icon: "GraduationCap"},
			}},
			{ID: "family", Name: "家庭", Icon: "Home", ColorHint: "bg-green-100 text-green-600", Children: []Node{
				{ID: "baby", Name: "母婴", Icon: "Baby"},
				{ID: "pet", Name: "宠物", Icon: "Dog"},
			}},
			{ID: "other", Name: "其他", Icon: "MoreHorizontal", ColorHint: "bg-gray-100 text-gray-600"},
		},
		Income: Tree{
			{ID: "salary", Name: "工资", Icon: "Banknote", ColorHint: "bg-indigo-100 text-indigo-600"},
			{ID: "part_time", Name: "兼职", Icon: "Briefcase", ColorHint: "bg-blue-100 text-blue-600"},
			{ID: "investment", Name: "理财", Icon: "TrendingUp", ColorHint: "bg-red-100 text-red-600"},
			{ID: "gift", Name: "礼金", Icon: "Gift", ColorHint: "bg-pink-100 text-pink-600"},
			{ID: "other_income", Name: "其他", Icon: "MoreHorizontal", ColorHint: "bg-gray-100 text-gray-600"},
		},
	}
}
