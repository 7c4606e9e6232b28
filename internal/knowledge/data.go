package knowledge

type company struct {
	Name         string
	Description  string
	Established  string
	Headquarters string
	Phone        string
	Email        string
	Website      string
}

type product struct {
	Name        string
	Category    string
	Description string
	Features    []string
	Pricing     map[string]string
}

type faq struct {
	Category string
	Question string
	Answer   string
}

type policy struct {
	Title     string
	Summary   string
	KeyPoints []string
}

type troubleshootingEntry struct {
	Product  string
	Issue    string
	Solution string
}

var companyInfo = company{
	Name:         "TechCorp",
	Description:  "a leading technology company providing innovative software solutions",
	Established:  "2010",
	Headquarters: "San Francisco, CA",
	Phone:        "1-800-TECHCORP",
	Email:        "support@techcorp.com",
	Website:      "https://www.techcorp.com",
}

var products = []product{
	{
		Name:        "CloudSync Pro",
		Category:    "Cloud Storage",
		Description: "Enterprise-grade cloud storage solution with advanced synchronization",
		Features: []string{
			"Unlimited storage",
			"Real-time sync across devices",
			"Advanced security encryption",
			"Team collaboration tools",
			"API integrations",
		},
		Pricing: map[string]string{
			"basic":        "$9.99/month",
			"professional": "$19.99/month",
			"enterprise":   "Custom pricing",
		},
	},
	{
		Name:        "DataAnalytics Suite",
		Category:    "Analytics",
		Description: "Comprehensive data analytics platform for business intelligence",
		Features: []string{
			"Real-time data visualization",
			"Custom dashboard creation",
			"Machine learning insights",
			"Multi-source data integration",
			"Automated reporting",
		},
		Pricing: map[string]string{
			"starter":    "$49.99/month",
			"business":   "$99.99/month",
			"enterprise": "Custom pricing",
		},
	},
	{
		Name:        "SecureVPN",
		Category:    "Security",
		Description: "High-speed VPN service with military-grade encryption",
		Features: []string{
			"256-bit AES encryption",
			"No-logs policy",
			"Global server network",
			"Kill switch protection",
			"Multi-device support",
		},
		Pricing: map[string]string{
			"monthly":  "$12.99/month",
			"annual":   "$79.99/year",
			"lifetime": "$299.99 one-time",
		},
	},
}

var faqs = []faq{
	{
		Category: "General",
		Question: "What is TechCorp?",
		Answer:   "TechCorp is a leading technology company founded in 2010, specializing in innovative software solutions including cloud storage, data analytics, and security services.",
	},
	{
		Category: "General",
		Question: "How can I contact customer support?",
		Answer:   "You can reach our customer support team by phone at 1-800-TECHCORP, email at support@techcorp.com, or through our website chat feature available 24/7.",
	},
	{
		Category: "Account",
		Question: "How do I create an account?",
		Answer:   "To create an account, visit our website at www.techcorp.com and click 'Sign Up'. You'll need to provide your email address, create a password, and verify your email.",
	},
	{
		Category: "Account",
		Question: "I forgot my password. How can I reset it?",
		Answer:   "Click 'Forgot Password' on the login page, enter your email address, and we'll send you a password reset link. Follow the instructions in the email to create a new password.",
	},
	{
		Category: "Account",
		Question: "How do I change my account information?",
		Answer:   "Log into your account and go to 'Account Settings'. You can update your personal information, change your password, and manage your subscription preferences.",
	},
	{
		Category: "Billing",
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards (Visa, MasterCard, American Express), PayPal, and bank transfers for enterprise customers.",
	},
	{
		Category: "Billing",
		Question: "How do I cancel my subscription?",
		Answer:   "You can cancel your subscription anytime by going to 'Account Settings' > 'Subscription' and clicking 'Cancel Subscription'. Your service will continue until the end of your current billing period.",
	},
	{
		Category: "Billing",
		Question: "Do you offer refunds?",
		Answer:   "Yes, we offer a 30-day money-back guarantee for all our products. If you're not satisfied, contact our support team within 30 days of purchase for a full refund.",
	},
	{
		Category: "CloudSync Pro",
		Question: "How much storage do I get with CloudSync Pro?",
		Answer:   "CloudSync Pro offers unlimited storage for all plans. You can store as many files as you need without worrying about storage limits.",
	},
	{
		Category: "CloudSync Pro",
		Question: "Can I share files with my team?",
		Answer:   "Yes, CloudSync Pro includes team collaboration features. You can share files and folders with team members, set permissions, and collaborate in real-time.",
	},
	{
		Category: "CloudSync Pro",
		Question: "Is my data secure?",
		Answer:   "Absolutely. CloudSync Pro uses advanced AES-256 encryption for all data transfers and storage. Your files are protected with military-grade security.",
	},
	{
		Category: "DataAnalytics Suite",
		Question: "What data sources can I connect to?",
		Answer:   "DataAnalytics Suite supports connections to databases (MySQL, PostgreSQL, MongoDB), cloud services (AWS, Google Cloud, Azure), APIs, CSV files, and many other data sources.",
	},
	{
		Category: "DataAnalytics Suite",
		Question: "Do you provide training for new users?",
		Answer:   "Yes, we offer comprehensive training including video tutorials, documentation, webinars, and one-on-one training sessions for enterprise customers.",
	},
	{
		Category: "SecureVPN",
		Question: "How many devices can I use with SecureVPN?",
		Answer:   "SecureVPN supports up to 10 simultaneous connections on a single account, allowing you to protect all your devices including computers, phones, and tablets.",
	},
	{
		Category: "SecureVPN",
		Question: "Do you keep logs of my activity?",
		Answer:   "No, we have a strict no-logs policy. We don't track, collect, or store any information about your online activities while using SecureVPN.",
	},
	{
		Category: "Technical",
		Question: "What are your system requirements?",
		Answer:   "Our products are compatible with Windows 10+, macOS 10.14+, iOS 12+, and Android 8+. For web applications, we support Chrome, Firefox, Safari, and Edge browsers.",
	},
	{
		Category: "Technical",
		Question: "Do you offer API access?",
		Answer:   "Yes, we provide RESTful APIs for all our products. API documentation and developer resources are available in our developer portal.",
	},
}

var policies = []policy{
	{
		Title:   "Privacy Policy",
		Summary: "TechCorp is committed to protecting your privacy. We collect only necessary information and never sell your data to third parties.",
		KeyPoints: []string{
			"We collect minimal personal information",
			"Data is encrypted and securely stored",
			"We don't sell or share your data",
			"You can request data deletion at any time",
			"We comply with GDPR and CCPA regulations",
		},
	},
	{
		Title:   "Terms of Service",
		Summary: "By using TechCorp services, you agree to our terms which outline acceptable use and service limitations.",
		KeyPoints: []string{
			"Service is provided 'as is'",
			"Users must comply with acceptable use policy",
			"TechCorp reserves the right to modify services",
			"Disputes are resolved through arbitration",
			"Service availability is not guaranteed 100%",
		},
	},
	{
		Title:   "Refund Policy",
		Summary: "We offer a 30-day money-back guarantee for all products and services.",
		KeyPoints: []string{
			"30-day money-back guarantee",
			"Refunds processed within 5-7 business days",
			"No questions asked for first 30 days",
			"Enterprise customers may have custom refund terms",
			"Refunds are issued to original payment method",
		},
	},
}

var troubleshooting = []troubleshootingEntry{
	{
		Product:  "CloudSync Pro",
		Issue:    "Sync not working",
		Solution: "1. Check your internet connection\n2. Restart the CloudSync application\n3. Verify your account credentials\n4. Check if you have sufficient storage space\n5. Contact support if issue persists",
	},
	{
		Product:  "CloudSync Pro",
		Issue:    "Slow upload speeds",
		Solution: "1. Check your internet speed\n2. Pause other bandwidth-intensive applications\n3. Try uploading during off-peak hours\n4. Use the desktop application instead of web interface\n5. Contact support for speed optimization tips",
	},
	{
		Product:  "DataAnalytics Suite",
		Issue:    "Dashboard not loading",
		Solution: "1. Clear your browser cache and cookies\n2. Try a different browser\n3. Check if JavaScript is enabled\n4. Disable browser extensions temporarily\n5. Contact support if problem continues",
	},
	{
		Product:  "SecureVPN",
		Issue:    "Cannot connect to VPN",
		Solution: "1. Check your internet connection\n2. Try a different VPN server location\n3. Restart your device\n4. Update the VPN application\n5. Check firewall settings\n6. Contact support for advanced troubleshooting",
	},
}
