package usecase

import "portfolio-backend/internal/domain"

// seedPosts are inserted by Seed into an empty collection.
func seedPosts() []domain.BlogPostCreate {
	return []domain.BlogPostCreate{
		{
			Title:   domain.Ptr("The Future of Data Analytics: Trends to Watch in 2025"),
			Excerpt: domain.Ptr("Exploring the latest trends in data analytics, from AI-powered insights to real-time processing and predictive modeling that will shape the industry."),
			Content: domain.Ptr(`
<p>The data analytics landscape is evolving rapidly, with several key trends emerging that will define how we handle and interpret data in 2025 and beyond.</p>

<h3>AI-Powered Analytics</h3>
<p>Artificial intelligence is revolutionizing how we approach data analysis. Machine learning algorithms can now identify patterns and insights that would take human analysts weeks to discover. The integration of AI into analytics platforms is making complex analysis more accessible to non-technical users.</p>

<h3>Real-Time Processing</h3>
<p>The demand for real-time insights is growing exponentially. Organizations need to make decisions based on current data, not historical reports. Technologies like Apache Kafka and real-time data warehouses are enabling instant analytics across industries.</p>

<h3>Predictive Modeling</h3>
<p>Advanced predictive models are becoming more accessible, allowing businesses to forecast trends and make proactive decisions rather than reactive ones. From supply chain optimization to customer behavior prediction, these models are driving competitive advantages.</p>

<h3>Data Democratization</h3>
<p>Self-service analytics tools are empowering business users to explore data independently. This trend is reducing the bottleneck on data teams while increasing organization-wide data literacy.</p>
`),
			Tags:     []string{"Data Analytics", "AI", "Machine Learning", "Trends"},
			ReadTime: domain.Ptr("5 min read"),
			Image:    domain.Ptr("https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800"),
		},
		{
			Title:   domain.Ptr("Building Effective BI Dashboards: A Practitioner's Guide"),
			Excerpt: domain.Ptr("Learn how to create compelling business intelligence dashboards that drive decision-making and deliver measurable business value."),
			Content: domain.Ptr(`
<p>Creating effective BI dashboards is both an art and a science. Here's what I've learned from building dozens of dashboards across various industries.</p>

<h3>Know Your Audience</h3>
<p>The most important step is understanding who will use your dashboard and what decisions they need to make. Different stakeholders require different levels of detail and different types of visualizations.</p>

<h3>Keep It Simple</h3>
<p>Resist the urge to include every metric. Focus on the key performance indicators that truly matter. A cluttered dashboard is worse than no dashboard at all.</p>

<h3>Design for Action</h3>
<p>Every visualization should lead to a potential action. If it doesn't, consider removing it. The best dashboards tell a story that guides users toward specific decisions.</p>

<h3>Performance Matters</h3>
<p>A slow dashboard is an unused dashboard. Optimize your queries, use appropriate aggregations, and consider data refresh schedules that balance freshness with performance.</p>

<h3>Mobile Responsiveness</h3>
<p>In today's mobile-first world, ensure your dashboards work well on tablets and phones. Many executives prefer to review metrics on their mobile devices.</p>
`),
			Tags:     []string{"BI", "Dashboards", "Data Visualization", "Best Practices"},
			ReadTime: domain.Ptr("7 min read"),
			Image:    domain.Ptr("https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800"),
		},
		{
			Title:   domain.Ptr("SQL Optimization Techniques That Saved Me Hours"),
			Excerpt: domain.Ptr("Discover practical SQL optimization strategies that can dramatically improve query performance and reduce processing time."),
			Content: domain.Ptr(`
<p>After years of working with complex datasets, I've discovered several SQL optimization techniques that have saved countless hours of processing time.</p>

<h3>Index Strategy</h3>
<p>Proper indexing can make the difference between a query that runs in seconds versus hours. Create indexes on columns used in WHERE clauses, JOIN conditions, and ORDER BY statements.</p>

<h3>Query Structure</h3>
<p>The way you structure your queries can have a massive impact on performance. Use subqueries judiciously, avoid unnecessary DISTINCT clauses, and leverage window functions where appropriate.</p>

<h3>Data Types Matter</h3>
<p>Choosing the right data types isn't just about storage - it affects query performance significantly. Use appropriate numeric types and avoid varchar when fixed-length strings suffice.</p>

<h3>Partitioning Large Tables</h3>
<p>For very large datasets, table partitioning can dramatically improve query performance by allowing the database to skip irrelevant data partitions.</p>

<h3>Query Execution Plans</h3>
<p>Always analyze execution plans to understand how your queries are being processed. This insight is invaluable for identifying bottlenecks and optimization opportunities.</p>
`),
			Tags:     []string{"SQL", "Database", "Performance", "Optimization"},
			ReadTime: domain.Ptr("6 min read"),
			Image:    domain.Ptr("https://images.unsplash.com/photo-1544383835-bda2bc66a55d?w=800"),
		},
	}
}
